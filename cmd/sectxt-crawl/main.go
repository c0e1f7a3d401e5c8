// Command sectxt-crawl reads candidate hostnames from stdin, one per line,
// and probes each for a security.txt file, logging one structured record
// per domain. It is the only part of this module that performs I/O; it
// depends on the sectxt package exclusively through its two public parse
// entry points.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/juju/loggo/v2"

	"github.com/eikendev/sectxt"
)

var logger = loggo.GetLogger("sectxt-crawl")

func main() {
	var opts settings
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	domains, err := readDomains(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reading domains:", err)
		os.Exit(1)
	}

	client := &http.Client{}
	parseOpts := sectxt.Options{Now: time.Now(), Relaxed: opts.Relaxed}
	timeout := time.Duration(opts.TimeoutSecs) * time.Second

	results := crawl(context.Background(), client, domains, opts.Threads, timeout, parseOpts)

	ok := 0
	for _, r := range results {
		if r.ok {
			ok++
		}
		if r.ok || !opts.Quiet {
			logRecord(r)
		}
	}

	if opts.PrintStats {
		fmt.Printf("%d/%d\n", ok, len(results))
	}
}

// readDomains reads one hostname per line, skipping blank lines.
func readDomains(r io.Reader) ([]string, error) {
	var domains []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		domains = append(domains, line)
	}

	return domains, scanner.Err()
}

// crawl probes every domain with at most threads requests in flight at
// once, using a buffered semaphore channel rather than a third-party
// concurrency limiter.
func crawl(ctx context.Context, client *http.Client, domains []string, threads int, timeout time.Duration, opts sectxt.Options) []outcome {
	results := make([]outcome, len(domains))
	sem := make(chan struct{}, threads)

	var wg sync.WaitGroup
	for i, domain := range domains {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, domain string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = probeDomain(ctx, client, domain, timeout, opts)
		}(i, domain)
	}
	wg.Wait()

	return results
}

func logRecord(o outcome) {
	if o.ok {
		logger.Infof("domain=%s len=%d status=OK", o.domain, o.fieldCount)
		return
	}
	logger.Errorf("domain=%s error=%q status=ERR", o.domain, o.err)
}
