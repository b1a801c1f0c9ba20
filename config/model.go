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
	"context"
	"sync/atomic"

	libatm "github.com/sabouaram/sitemapgen/atomic"
	cfgtps "github.com/sabouaram/sitemapgen/config/types"
	libctx "github.com/sabouaram/sitemapgen/context"
	montps "github.com/sabouaram/sitemapgen/monitor/types"
	libver "github.com/sabouaram/sitemapgen/version"
	libvpr "github.com/sabouaram/sitemapgen/viper"
	spfvpr "github.com/spf13/viper"
)

// JSONIndent is the indentation every component's DefaultConfig nests its
// JSON fragment under when assembled by DefaultConfig.
const JSONIndent = "  "

const (
	fctVersion      = "version"
	fctViper        = "viper"
	fctStartBefore  = "start-before"
	fctStartAfter   = "start-after"
	fctReloadBefore = "reload-before"
	fctReloadAfter  = "reload-after"
	fctStopBefore   = "stop-before"
	fctStopAfter    = "stop-after"
	fctLoggerDef    = "logger-default"
	fctMonitorPool  = "monitor-pool"
)

// model backs the exported Config interface: one shared context, one
// registry of cfgtps.Component, one set of CancelAdd hooks and one registry
// of the optional viper/version/logger/monitor-pool providers and
// before/after lifecycle hooks, all keyed by the small fct* constants above.
type model struct {
	ctx libctx.Config[string]
	cpt libatm.MapTyped[string, cfgtps.Component]
	cnl libatm.MapTyped[uint64, context.CancelFunc]
	fct libatm.MapTyped[string, interface{}]
	seq atomic.Uint64
}

func (o *model) RegisterVersion(vrs libver.Version) {
	o.fct.Store(fctVersion, vrs)
}

func (o *model) getVersion() libver.Version {
	if i, l := o.fct.Load(fctVersion); !l {
		return nil
	} else if v, k := i.(libver.Version); !k {
		return nil
	} else {
		return v
	}
}

// RegisterFuncViper registers the viper provider function exposed to every
// component during Init.
func (o *model) RegisterFuncViper(fct libvpr.FuncViper) {
	o.fct.Store(fctViper, fct)
}

func (o *model) getViper() libvpr.Viper {
	if i, l := o.fct.Load(fctViper); !l {
		return nil
	} else if v, k := i.(libvpr.FuncViper); !k || v == nil {
		return nil
	} else {
		return v()
	}
}

func (o *model) getSPFViper() *spfvpr.Viper {
	if v := o.getViper(); v == nil {
		return nil
	} else {
		return v.Viper()
	}
}

func (o *model) RegisterFuncStartBefore(fct FuncEvent) { o.fct.Store(fctStartBefore, fct) }
func (o *model) RegisterFuncStartAfter(fct FuncEvent)  { o.fct.Store(fctStartAfter, fct) }
func (o *model) RegisterFuncReloadBefore(fct FuncEvent) {
	o.fct.Store(fctReloadBefore, fct)
}
func (o *model) RegisterFuncReloadAfter(fct FuncEvent) { o.fct.Store(fctReloadAfter, fct) }
func (o *model) RegisterFuncStopBefore(fct FuncEvent)  { o.fct.Store(fctStopBefore, fct) }
func (o *model) RegisterFuncStopAfter(fct FuncEvent)   { o.fct.Store(fctStopAfter, fct) }

func (o *model) runFctEvent(key string) error {
	i, l := o.fct.Load(key)
	if !l {
		return nil
	}

	v, k := i.(FuncEvent)
	if !k || v == nil {
		return nil
	}

	return v()
}

// RegisterMonitorPool registers the monitor pool provider exposed to every
// component during Init.
func (o *model) RegisterMonitorPool(p montps.FuncPool) {
	o.fct.Store(fctMonitorPool, p)
}

func (o *model) getFctMonitorPool() montps.FuncPool {
	if i, l := o.fct.Load(fctMonitorPool); !l {
		return nil
	} else if v, k := i.(montps.FuncPool); !k {
		return nil
	} else {
		return v
	}
}

func (o *model) getMonitorPool() montps.Pool {
	if f := o.getFctMonitorPool(); f == nil {
		return nil
	} else {
		return f()
	}
}
