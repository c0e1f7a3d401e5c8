package main

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/eikendev/sectxt"
)

// candidatePaths are tried in order for each domain; the first one that
// produces a response (successful or not) ends the attempt, mirroring
// how a browser resolves the well-known location first.
var candidatePaths = []string{
	"/.well-known/security.txt",
	"/security.txt",
}

// outcome is one domain's probe result, in a shape cheap to log and tally.
type outcome struct {
	domain     string
	ok         bool
	err        error
	fieldCount int
}

// probeDomain tries each candidate URL for domain in turn, stopping at the
// first one that responds, and parses an accepted body with opts.
func probeDomain(ctx context.Context, client *http.Client, domain string, timeout time.Duration, opts sectxt.Options) outcome {
	var lastErr error

	for _, path := range candidatePaths {
		resp, err := fetch(ctx, client, "https://"+domain+path, timeout)
		if err != nil {
			lastErr = err
			continue
		}

		o := acceptResponse(domain, resp, opts)
		resp.Body.Close()
		return o
	}

	return outcome{domain: domain, err: fmt.Errorf("no response from any candidate URL: %w", lastErr)}
}

// fetch issues a single bounded GET request.
func fetch(ctx context.Context, client *http.Client, url string, timeout time.Duration) (*http.Response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	return client.Do(req)
}

// acceptResponse enforces the status and Content-Type gate and, once
// cleared, hands the body to the parser.
func acceptResponse(domain string, resp *http.Response, opts sectxt.Options) outcome {
	if resp.StatusCode != http.StatusOK {
		return outcome{domain: domain, err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if !isSecurityTxtContentType(resp.Header.Get("Content-Type")) {
		return outcome{domain: domain, err: fmt.Errorf("unexpected content type %q", resp.Header.Get("Content-Type"))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return outcome{domain: domain, err: fmt.Errorf("reading body: %w", err)}
	}

	doc, err := sectxt.ParseWith(body, opts)
	if err != nil {
		return outcome{domain: domain, err: err}
	}

	return outcome{domain: domain, ok: true, fieldCount: doc.FieldCount()}
}

// isSecurityTxtContentType reports whether header parses to exactly
// "text/plain" with a "charset=utf-8" parameter, tolerating parameter
// ordering and whitespace the way mime.ParseMediaType does. The charset
// value is compared case-insensitively.
func isSecurityTxtContentType(header string) bool {
	mediaType, params, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == "text/plain" && strings.EqualFold(params["charset"], "utf-8")
}
