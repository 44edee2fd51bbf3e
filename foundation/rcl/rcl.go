// File: rcl.go
// Title: RCL Engine
// Description: High-level API for the robot control language. Parses
//              sources through a cached parser, summarizes programs and
//              executes them with errors translated to coded errors.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine with ARC program cache
// - 2026-10-19 v0.1.1: Timed parse and execute

package rcl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru"

	mdwerror "github.com/msto63/roboarena/foundation/core/error"
	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/foundation/rcl/ast"
	"github.com/msto63/roboarena/foundation/rcl/parser"
)

// DefaultCacheSize is the number of parsed programs kept by an Engine
const DefaultCacheSize = 128

// Engine coordinates parsing, checking and execution of RCL programs.
// It is safe for concurrent use.
type Engine struct {
	parser  *parser.Parser
	cache   *lru.ARCCache
	logger  *mdwlog.Logger
	options Options
}

// Options configures the RCL engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxSourceBytes limits program size (default: parser.DefaultMaxSourceBytes)
	MaxSourceBytes int

	// CacheSize is the number of parsed programs kept (default: 128, negative disables)
	CacheSize int
}

// Summary describes a successfully parsed program
type Summary struct {
	Hash        string // SHA-256 of the source, hex encoded
	Canonical   string // compact canonical rendering
	Statements  int
	Actions     int
	Conditions  int
	Expressions int
	MaxDepth    int
}

// NewEngine creates a new RCL engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:         mdwlog.GetDefault(),
		MaxSourceBytes: parser.DefaultMaxSourceBytes,
		CacheSize:      DefaultCacheSize,
	}
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxSourceBytes > 0 {
			options.MaxSourceBytes = provided.MaxSourceBytes
		}
		if provided.CacheSize != 0 {
			options.CacheSize = provided.CacheSize
		}
	}

	logger := options.Logger.WithField("component", "rcl-engine")

	p, err := parser.New(parser.Options{
		Logger:         options.Logger,
		MaxSourceBytes: options.MaxSourceBytes,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize RCL parser").WithCode(mdwerror.CodeInvalidConfig)
	}

	engine := &Engine{
		parser:  p,
		logger:  logger,
		options: options,
	}
	if options.CacheSize > 0 {
		cache, err := lru.NewARC(options.CacheSize)
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to initialize program cache").WithCode(mdwerror.CodeInvalidConfig)
		}
		engine.cache = cache
	}

	logger.Debug("RCL engine initialized", mdwlog.Fields{
		"maxSourceBytes": options.MaxSourceBytes,
		"cacheSize":      options.CacheSize,
	})
	return engine, nil
}

// Hash returns the cache key of a source
func Hash(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}

// Parse parses a source, reusing a cached tree for identical sources.
// Cached trees are shared; they are never mutated by evaluation.
func (e *Engine) Parse(src string) (*ast.Program, error) {
	key := Hash(src)
	if e.cache != nil {
		if v, ok := e.cache.Get(key); ok {
			e.logger.Trace("Program cache hit", mdwlog.Fields{"hash": key[:12]})
			return v.(*ast.Program), nil
		}
	}

	timer := e.logger.StartTimer("rcl_parse").WithField("bytes", len(src))
	prog, err := e.parser.Parse(src)
	if err != nil {
		err = translateParseError(err)
		timer.WithField("error", err.Error()).Stop()
		return nil, err
	}
	timer.WithField("statements", len(prog.Statements)).Stop()

	if e.cache != nil {
		e.cache.Add(key, prog)
		e.logger.Trace("Program cached", mdwlog.Fields{"hash": key[:12]})
	}
	return prog, nil
}

// ParseFile reads and parses a program file
func (e *Engine) ParseFile(path string) (*ast.Program, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	prog, err := e.Parse(src)
	if err != nil {
		return nil, mdwerror.Wrap(err, path).WithDetail("file", path)
	}
	return prog, nil
}

// Check parses a source and summarizes the resulting program
func (e *Engine) Check(src string) (*Summary, error) {
	prog, err := e.Parse(src)
	if err != nil {
		return nil, err
	}
	if err := prog.Validate(); err != nil {
		return nil, mdwerror.Wrap(err, "invalid program").
			WithCode(mdwerror.CodeRCLSyntax).
			WithOperation("rcl.Check")
	}

	st := ast.Collect(prog)
	return &Summary{
		Hash:        Hash(src),
		Canonical:   prog.String(),
		Statements:  st.Statements,
		Actions:     st.Actions,
		Conditions:  st.Conditions,
		Expressions: st.Expressions,
		MaxDepth:    st.MaxDepth,
	}, nil
}

// CheckFile reads a program file and summarizes it
func (e *Engine) CheckFile(path string) (*Summary, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	sum, err := e.Check(src)
	if err != nil {
		return nil, mdwerror.Wrap(err, path).WithDetail("file", path)
	}
	return sum, nil
}

// Execute runs a program once against a robot
func (e *Engine) Execute(ctx context.Context, prog *ast.Program, robot ast.Robot) error {
	if prog == nil {
		return mdwerror.New("program is nil").WithCode(mdwerror.CodeInvalidInput).WithOperation("rcl.Execute")
	}
	timer := e.logger.StartTimer("rcl_execute")
	if err := prog.Execute(ctx, robot); err != nil {
		err = TranslateExecError(err)
		if mdwerror.GetCode(err) == mdwerror.CodeRCLHalted {
			timer.WithField("halted", true).Stop()
		} else {
			timer.StopWithError(err)
		}
		return err
	}
	timer.Stop()
	return nil
}

// TranslateExecError maps evaluation and cancellation errors to coded
// errors. The original error stays reachable through errors.As.
func TranslateExecError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return mdwerror.Wrap(err, "program halted").
			WithCode(mdwerror.CodeRCLHalted).
			WithOperation("rcl.Execute")
	}

	wrapped := mdwerror.Wrap(err, "program failed").
		WithCode(mdwerror.CodeRCLExecution).
		WithOperation("rcl.Execute")
	if errors.Is(err, ast.ErrDivisionByZero) {
		wrapped.WithCode(mdwerror.CodeDivisionByZero)
	}
	var evalErr *ast.EvalError
	if errors.As(err, &evalErr) {
		wrapped.WithDetail("expr", evalErr.Node.String()).
			WithDetail("position", evalErr.Node.Position().String())
	}
	return wrapped
}

func translateParseError(err error) error {
	if errors.Is(err, parser.ErrSourceTooLarge) {
		return mdwerror.Wrap(err, "program rejected").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("rcl.Parse")
	}

	wrapped := mdwerror.Wrap(err, "syntax error").
		WithCode(mdwerror.CodeRCLSyntax).
		WithOperation("rcl.Parse")
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		wrapped.WithDetail("line", pe.Line).WithDetail("column", pe.Column)
	}
	return wrapped
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", mdwerror.Wrap(err, fmt.Sprintf("program file %s not found", path)).
				WithCode(mdwerror.CodeNotFound).
				WithDetail("file", path)
		}
		return "", mdwerror.Wrap(err, "failed to read program").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("file", path)
	}
	return string(data), nil
}
