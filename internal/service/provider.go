// Package service composes the parser and the stat reducers behind the HTTP
// API. Parsing a full log is not free, so the parse result is memoized here
// for the lifetime of the process; the parser itself stays stateless.
package service

import (
	"errors"
	"os"
	"sync"

	"github.com/leighmacdonald/cslogstats/internal/log"
	"github.com/leighmacdonald/cslogstats/pkg/logparse"
)

var (
	ErrOpenLog  = errors.New("failed to open match log")
	ErrScanLog  = errors.New("failed to read match log")
	ErrNoLogSet = errors.New("no match log path configured")
)

// Provider owns reading and parsing the configured match log. The first caller
// pays the parse cost, concurrent first callers are serialized and everyone
// after that gets the cached result.
type Provider struct {
	path   string
	parser *logparse.Parser

	mu     sync.Mutex
	cached *logparse.Result
}

func NewProvider(path string) *Provider {
	return &Provider{
		path:   path,
		parser: logparse.New(),
	}
}

// Result returns the parse result for the configured log, computing it on
// first use.
func (p *Provider) Result() (*logparse.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return p.cached, nil
	}

	if p.path == "" {
		return nil, ErrNoLogSet
	}

	reader, errOpen := os.Open(p.path)
	if errOpen != nil {
		return nil, errors.Join(errOpen, ErrOpenLog)
	}

	defer log.Closer(reader)

	result, errParse := p.parser.ParseReader(reader)
	if errParse != nil {
		return nil, errors.Join(errParse, ErrScanLog)
	}

	p.cached = result

	return result, nil
}

// Invalidate drops the cached result so the next Result call re-reads the log.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cached = nil
}
