// Package displaytime renders the human-readable created_at / updated_at
// strings stored on feedbacks and question sets.
package displaytime

import (
	"fmt"
	"time"
)

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Format renders t in loc using the pt-BR long form, e.g.
// "19 de outubro de 2026 às 14:03:05 UTC".
func Format(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d de %s de %d às %02d:%02d:%02d %s",
		t.Day(), months[t.Month()-1], t.Year(),
		t.Hour(), t.Minute(), t.Second(), t.Format("MST"))
}

// Clock produces display timestamps in a fixed location.
type Clock struct {
	Now func() time.Time
	Loc *time.Location
}

func NewClock(loc *time.Location) *Clock {
	return &Clock{Now: time.Now, Loc: loc}
}

func (c *Clock) Stamp() string {
	return Format(c.Now(), c.Loc)
}

func (c *Clock) UnixMilli() int64 {
	return c.Now().UnixMilli()
}
