package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	wxtouch "github.com/HeteroCat/wx-touch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service wxtouch.Service
	Writer  wxtouch.ExtractionWriter
	JSON    bool

	// Location renders article timestamps. Nil uses time.Local.
	Location *time.Location
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	GlobalFlags `embed:""`

	Search  SearchCmd  `cmd:"" help:"Search public accounts by name"`
	Latest  LatestCmd  `cmd:"" help:"List an account's latest articles"`
	Extract ExtractCmd `cmd:"" help:"Convert an article to Markdown"`
	Keyword KeywordCmd `cmd:"" help:"Search an account's articles by keyword"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Queries     []string `arg:"" name:"query" help:"Account names to search for"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent search limit"`
	Rate        float64  `short:"r" default:"0" help:"Requests per second (0 for unlimited)"`
}

// LatestCmd is the "latest" subcommand.
type LatestCmd struct {
	Nickname string `arg:"" help:"Exact account name"`
	Count    int    `short:"n" default:"${default_count}" help:"Number of articles (${min_count}-${max_count})"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL       string `arg:"" name:"url" help:"Article URL on mp.weixin.qq.com"`
	OutputDir string `short:"o" name:"output-dir" help:"Write Markdown under this directory instead of stdout"`
}

// KeywordCmd is the "keyword" subcommand.
type KeywordCmd struct {
	Keyword  string `arg:"" help:"Keyword to search for"`
	Nickname string `arg:"" help:"Exact account name"`
	Type     string `name:"type" enum:"title,content" default:"title" help:"Match against title or content"`
	Count    int    `short:"n" default:"${default_count}" help:"Number of articles (${min_count}-${max_count})"`
	Offset   int    `default:"0" help:"Number of results to skip"`
}
