package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"video-uploader/domain/model"
)

func TestPresentationCoversEveryStatus(t *testing.T) {
	assert.Len(t, model.AllVideoStatuses, 5)

	for _, status := range model.AllVideoStatuses {
		p := status.Presentation()
		assert.NotEmpty(t, p.Label, "label for %s", status)
		assert.NotEmpty(t, p.Icon, "icon for %s", status)
		assert.NotEmpty(t, p.Color, "color for %s", status)
		assert.NotEmpty(t, p.Severity, "severity for %s", status)
	}
}

func TestPresentationUnknownStatusPanics(t *testing.T) {
	assert.Panics(t, func() {
		model.VideoStatus("REWINDING").Presentation()
	})
}

func TestConvertingCarriesAnimatedHint(t *testing.T) {
	for _, status := range model.AllVideoStatuses {
		p := status.Presentation()
		if status == model.StatusConverting {
			assert.True(t, p.Animated)
		} else {
			assert.False(t, p.Animated, "only the converting stage animates, got %s", status)
		}
	}
}

func TestTerminalAndDownloadable(t *testing.T) {
	assert.True(t, model.StatusFinished.Terminal())
	assert.True(t, model.StatusFailed.Terminal())
	assert.False(t, model.StatusUploadPending.Terminal())
	assert.False(t, model.StatusUploaded.Terminal())
	assert.False(t, model.StatusConverting.Terminal())

	for _, status := range model.AllVideoStatuses {
		assert.Equal(t, status == model.StatusFinished, status.Downloadable(), "downloadable for %s", status)
	}
}

func TestStatusValid(t *testing.T) {
	for _, status := range model.AllVideoStatuses {
		assert.True(t, status.Valid())
	}
	assert.False(t, model.VideoStatus("").Valid())
	assert.False(t, model.VideoStatus("finished").Valid())
}
