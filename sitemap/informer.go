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

package sitemap

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	libhtc "github.com/sabouaram/sitemapgen/httpcli"
)

// pingTemplateInformer issues a GET to a ping URL template T with the
// percent-encoded public sitemap URL appended, per spec 6's search-engine
// informer protocol. Success is HTTP 200; when requireAck is set (the blog
// ping flavor) the response body must also contain ackPhrase.
type pingTemplateInformer struct {
	template   string
	requireAck bool
	ackPhrase  string
}

// NewPingInformer returns an Informer for a plain search-engine ping
// template (e.g. "https://www.google.com/ping?sitemap=").
func NewPingInformer(template string) Informer {
	return &pingTemplateInformer{template: template}
}

// NewBlogPingInformer returns an Informer for a blog-ping aggregator whose
// success response body must contain "Thanks for the ping.".
func NewBlogPingInformer(template string) Informer {
	return &pingTemplateInformer{
		template:   template,
		requireAck: true,
		ackPhrase:  "Thanks for the ping.",
	}
}

func (p *pingTemplateInformer) Inform(ctx context.Context, publicSitemapURL string) error {
	target := p.template + url.QueryEscape(publicSitemapURL)

	req := libhtc.New(nil)
	if err := req.Endpoint(target); err != nil {
		return ErrorInform.Error(err)
	}
	req.Method("GET")

	res, e := req.Do(ctx)
	if e != nil {
		return ErrorInform.Error(e)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return ErrorInform.Error(fmt.Errorf("%s returned status %d", p.template, res.StatusCode))
	}

	if !p.requireAck {
		return nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return ErrorInform.Error(err)
	}

	if !strings.Contains(string(body), p.ackPhrase) {
		return ErrorInform.Error(fmt.Errorf("%s response missing acknowledgement", p.template))
	}

	return nil
}
