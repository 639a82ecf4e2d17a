package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"

	eta "github.com/jdziat/schedule-eta"
)

// printer writes one record per resolved ETA. Watch mode calls it from
// timer goroutines, so writes are serialized.
type printer struct {
	mu     sync.Mutex
	w      io.Writer
	json   bool
	format string
}

func newPrinter(w io.Writer, jsonOut bool, format string) *printer {
	return &printer{w: w, json: jsonOut, format: format}
}

// print writes the outcome for item. err takes precedence over etas; an
// empty etas slice is printed as "none".
func (p *printer) print(item eta.Item, ref time.Time, etas []eta.ETA, err error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil || len(etas) == 0 {
		return p.line(item, ref, eta.None, err)
	}
	for _, e := range etas {
		if werr := p.line(item, ref, e, nil); werr != nil {
			return werr
		}
	}
	return nil
}

func (p *printer) line(item eta.Item, ref time.Time, e eta.ETA, err error) error {
	if p.json {
		data, merr := json.Marshal(eta.NewResponse(item.ID, e, err))
		if merr != nil {
			return merr
		}
		_, werr := fmt.Fprintf(p.w, "%s\n", data)
		return werr
	}

	var werr error
	switch {
	case err != nil:
		_, werr = fmt.Fprintf(p.w, "%s\terror\t%v\n", item.ID, err)
	case e.IsNone():
		_, werr = fmt.Fprintf(p.w, "%s\tnone\n", item.ID)
	default:
		_, werr = fmt.Fprintf(p.w, "%s\t%s\t%s\t%s\n",
			item.ID, e, p.local(item.Request.Timezone, e.At), humanize.RelTime(e.At, ref, "ago", "from now"))
	}
	return werr
}

// local renders t in the request's timezone, falling back to UTC.
func (p *printer) local(tz string, t time.Time) string {
	loc, err := eta.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return strftime.Format(p.format, t.In(loc))
}
