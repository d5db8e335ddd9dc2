package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"goslice/config"
	"goslice/slice"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// report 是一次演示运行的输出，每个字段对应 View 的一个操作
type report struct {
	Buffer  []int  `json:"buffer"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Length  int    `json:"length"`
	Values  []int  `json:"values"`
	First   *int   `json:"first,omitempty"`
	Last    *int   `json:"last,omitempty"`
	Doubled []int  `json:"doubled"`
	Indexes []int  `json:"indexes"`
	Sum     int    `json:"sum"`
	Joined  string `json:"joined"`
	Copy    []int  `json:"copy"`
}

// createView builds the view described by cfg over cfg's buffer.
func createView(cfg *config.Config) (slice.View[int], error) {
	v, err := slice.New(cfg.View.Buffer, cfg.View.Start, cfg.View.End)
	if err != nil {
		return slice.View[int]{}, fmt.Errorf("create view: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"start":  cfg.View.Start,
		"end":    cfg.View.End,
		"length": v.Len(),
	}).Info("view created")
	return v, nil
}

func buildReport(cfg *config.Config, v slice.View[int]) *report {
	start, end := v.Bounds()
	r := &report{
		Buffer:  cfg.View.Buffer,
		Start:   start,
		End:     end,
		Length:  v.Len(),
		Values:  v.Values(),
		Doubled: slice.Map(v, func(x, _ int) int { return x * 2 }).Values(),
		Indexes: slice.Map(v, func(_, i int) int { return i }).Values(),
		Sum:     slice.Reduce(v, func(acc, x, _ int, _ slice.View[int]) int { return acc + x }, 0),
		Joined:  v.Join(cfg.View.Separator),
		Copy:    v.ShallowCopy().Values(),
	}
	if x, err := v.First(); err == nil {
		r.First = &x
	}
	if x, err := v.Last(); err == nil {
		r.Last = &x
	}
	return r
}

// run parses args, loads the configuration and writes the report to w.
func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("goslice", flag.ContinueOnError)
	var (
		path  = fs.String("config", "", "INI config file")
		start = fs.Int("start", 0, "Inclusive start offset")
		end   = fs.Int("end", 0, "Inclusive end offset")
		sep   = fs.String("sep", "", "Join separator")
		debug = fs.Bool("debug", false, "Enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return err
	}
	// 命令行参数只在显式指定时覆盖配置
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			cfg.View.Start = *start
		case "end":
			cfg.View.End = *end
		case "sep":
			cfg.View.Separator = *sep
		case "debug":
			cfg.Log.Debug = *debug
		}
	})

	if cfg.Log.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	v, err := createView(cfg)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildReport(cfg, v))
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	slice.SetLogger(logrus.StandardLogger())

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logrus.Fatalf("goslice: %v", err)
	}
}
