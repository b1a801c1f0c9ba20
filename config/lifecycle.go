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

package config

import (
	"os"
)

// Start runs the registered start-before hook, starts every component in
// dependency order, then runs the start-after hook. It stops at the first
// failing stage.
func (o *model) Start() error {
	if err := o.runFctEvent(fctStartBefore); err != nil {
		return err
	}

	if err := o.ComponentStart(); err != nil {
		return err
	}

	return o.runFctEvent(fctStartAfter)
}

// Reload runs the registered reload-before hook, reloads every component in
// dependency order, then runs the reload-after hook.
func (o *model) Reload() error {
	if err := o.runFctEvent(fctReloadBefore); err != nil {
		return err
	}

	if err := o.ComponentReload(); err != nil {
		return err
	}

	return o.runFctEvent(fctReloadAfter)
}

// Stop runs the stop-before hook, stops every component in reverse
// dependency order, then runs the stop-after hook. Best effort: component
// stop failures are not surfaced, matching ComponentStop.
func (o *model) Stop() {
	_ = o.runFctEvent(fctStopBefore)
	o.ComponentStop()
	_ = o.runFctEvent(fctStopAfter)
}

// Shutdown cancels every CancelAdd hook, stops all components and exits the
// process with code.
func (o *model) Shutdown(code int) {
	o.cancel()
	os.Exit(code)
}
