package displaytime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2026, time.October, 19, 14, 3, 5, 0, time.UTC)
	assert.Equal(t, "19 de outubro de 2026 às 14:03:05 UTC", Format(ts, time.UTC))

	ts = time.Date(2025, time.March, 1, 9, 0, 7, 0, time.UTC)
	assert.Equal(t, "1 de março de 2025 às 09:00:07 UTC", Format(ts, nil))
}

func TestFormatConvertsLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2026, time.January, 1, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "31 de dezembro de 2025 às 22:30:00 BRT", Format(ts, loc))
}

func TestClock(t *testing.T) {
	fixed := time.Date(2026, time.October, 19, 14, 3, 5, 0, time.UTC)
	c := &Clock{Now: func() time.Time { return fixed }, Loc: time.UTC}

	assert.Equal(t, "19 de outubro de 2026 às 14:03:05 UTC", c.Stamp())
	assert.Equal(t, fixed.UnixMilli(), c.UnixMilli())
}
