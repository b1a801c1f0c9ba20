/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

package monitor_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	monsts "github.com/sabouaram/sitemapgen/monitor/status"
	montps "github.com/sabouaram/sitemapgen/monitor/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Monitor", func() {
	var (
		ctx context.Context
		cnl context.CancelFunc
		mon montps.Monitor
	)

	BeforeEach(func() {
		ctx, cnl = context.WithTimeout(context.Background(), 5*time.Second)
		mon = newMonitor(ctx, "test-monitor")
	})

	AfterEach(func() {
		if mon != nil && mon.IsRunning() {
			mon.Stop()
		}
		cnl()
	})

	It("is named after the registered info", func() {
		Expect(mon.Name()).To(Equal("test-monitor"))
	})

	It("is not running before Start", func() {
		Expect(mon.IsRunning()).To(BeFalse())
	})

	It("becomes OK after a successful check", func() {
		Expect(mon.SetConfig(ctx, fastConfig())).To(Succeed())
		mon.SetHealthCheck(func(context.Context) error { return nil })
		Expect(mon.Start(ctx)).To(Succeed())

		Eventually(func() montps.Status {
			return mon.Status()
		}, 2*time.Second, 20*time.Millisecond).Should(Equal(montps.Status(monsts.OK)))
	})

	It("becomes KO after a failing check and records LastError", func() {
		boom := errors.New("boom")

		Expect(mon.SetConfig(ctx, fastConfig())).To(Succeed())
		mon.SetHealthCheck(func(context.Context) error { return boom })
		Expect(mon.Start(ctx)).To(Succeed())

		Eventually(func() error {
			return mon.LastError()
		}, 2*time.Second, 20*time.Millisecond).Should(Equal(boom))
	})

	It("invokes the health check repeatedly while running", func() {
		var n int64

		Expect(mon.SetConfig(ctx, fastConfig())).To(Succeed())
		mon.SetHealthCheck(func(context.Context) error {
			atomic.AddInt64(&n, 1)
			return nil
		})
		Expect(mon.Start(ctx)).To(Succeed())

		Eventually(func() int64 {
			return atomic.LoadInt64(&n)
		}, 2*time.Second, 20*time.Millisecond).Should(BeNumerically(">=", 2))
	})

	It("stops cleanly", func() {
		Expect(mon.SetConfig(ctx, fastConfig())).To(Succeed())
		mon.SetHealthCheck(func(context.Context) error { return nil })
		Expect(mon.Start(ctx)).To(Succeed())
		Expect(mon.IsRunning()).To(BeTrue())

		mon.Stop()
		Expect(mon.IsRunning()).To(BeFalse())
	})
})
