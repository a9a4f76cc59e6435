package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIDGenerator_Next(t *testing.T) {
	now := int64(1_000)
	g := idGenerator{now: func() time.Time { return time.UnixMilli(now) }}

	assert.Equal(t, int64(1_000), g.next())
	assert.Equal(t, int64(1_001), g.next(), "same tick")
	assert.Equal(t, int64(1_002), g.next(), "same tick")

	now = 5_000
	assert.Equal(t, int64(5_000), g.next(), "clock moved ahead")

	now = 10
	assert.Equal(t, int64(5_001), g.next(), "clock went back")
}

func TestIDGenerator_Seed(t *testing.T) {
	g := idGenerator{now: func() time.Time { return time.UnixMilli(100) }}

	g.seed(900)
	assert.Equal(t, int64(901), g.next())

	g.seed(50)
	assert.Equal(t, int64(902), g.next(), "lower seed is ignored")
}
