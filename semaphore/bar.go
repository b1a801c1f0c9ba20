/*
 * MIT License
 *
 * Copyright (c) 2019 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package semaphore

import (
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// noopBar satisfies Bar when the owning Semaphore has no progress container.
type noopBar struct{}

func (noopBar) Total() int64    { return 0 }
func (noopBar) Current() int64  { return 0 }
func (noopBar) Inc(int)         {}
func (noopBar) Inc64(int64)     {}
func (noopBar) Dec(int)         {}
func (noopBar) Dec64(int64)     {}
func (noopBar) Complete()       {}
func (noopBar) Completed() bool { return true }

type mpbBar struct {
	total int64
	bar   *mpb.Bar
}

func (b *mpbBar) Total() int64   { return b.total }
func (b *mpbBar) Current() int64 { return b.bar.Current() }
func (b *mpbBar) Inc(n int)      { b.bar.IncrBy(n) }
func (b *mpbBar) Inc64(n int64)  { b.bar.IncrInt64(n) }
func (b *mpbBar) Dec(n int)      { b.bar.IncrBy(-n) }
func (b *mpbBar) Dec64(n int64)  { b.bar.IncrInt64(-n) }
func (b *mpbBar) Complete()      { b.bar.SetCurrent(b.total) }
func (b *mpbBar) Completed() bool { return b.bar.Completed() }

func (m *model) barOptions(drop bool, after Bar) []mpb.BarOption {
	opts := make([]mpb.BarOption, 0, 2)

	if drop {
		opts = append(opts, mpb.BarRemoveOnComplete())
	}

	if p, ok := after.(*mpbBar); ok && p != nil {
		opts = append(opts, mpb.BarQueueAfter(p.bar, false))
	}

	return opts
}

func (m *model) BarOpts(total int64, drop bool) Bar {
	if m.mpb == nil {
		return noopBar{}
	}

	m.mpbMu.Lock()
	defer m.mpbMu.Unlock()

	b := m.mpb.AddBar(total, m.barOptions(drop, nil)...)
	return &mpbBar{total: total, bar: b}
}

func (m *model) barNamed(title, message string, total int64, drop bool, after Bar, counters mpb.BarFillerBuilder) Bar {
	if m.mpb == nil {
		return noopBar{}
	}

	m.mpbMu.Lock()
	defer m.mpbMu.Unlock()

	opts := m.barOptions(drop, after)
	opts = append(opts,
		mpb.PrependDecorators(decor.Name(title), decor.Name(" "+message)),
		mpb.AppendDecorators(decor.Percentage()),
	)

	var b *mpb.Bar
	if counters != nil {
		b = m.mpb.Add(total, counters, opts...)
	} else {
		b = m.mpb.AddBar(total, opts...)
	}

	return &mpbBar{total: total, bar: b}
}

func (m *model) BarBytes(title, message string, total int64, drop bool, after Bar) Bar {
	return m.barNamed(title, message, total, drop, after, mpb.NewBarFiller(mpb.BarStyle()))
}

func (m *model) BarTime(title, message string, total int64, drop bool, after Bar) Bar {
	return m.barNamed(title, message, total, drop, after, nil)
}

func (m *model) BarNumber(title, message string, total int64, drop bool, after Bar) Bar {
	return m.barNamed(title, message, total, drop, after, nil)
}
