package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorRecord_HasSlashHistory(t *testing.T) {
	assert.False(t, ValidatorRecord{}.HasSlashHistory())
	assert.False(t, ValidatorRecord{SlashEvents: []*SlashEvent{}}.HasSlashHistory())
	assert.True(t, ValidatorRecord{SlashEvents: []*SlashEvent{{Reason: SlashReasonDowntime}}}.HasSlashHistory())
}
