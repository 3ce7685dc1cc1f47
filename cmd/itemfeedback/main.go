// Command itemfeedback 展示挖掘得到的 itemset，收集用户排序反馈，并按列组划分兴趣层级。
//
//	itemfeedback -config app.yaml [-mode itemset|ranking|none] [-rowid row_ids] [files...]
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/rushteam/itemfeedback/config"
	"github.com/rushteam/itemfeedback/log"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		mode       = flag.String("mode", "", "Feedback mode: itemset, ranking or none")
		rowID      = flag.String("rowid", "", "Column holding row ids")
		logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
		storeType  = flag.String("store", "", "Feedback history store: none, memory or redis")
		storeAddr  = flag.String("redis-addr", "", "Redis address when -store=redis")
		asJSON     = flag.Bool("json", false, "Print interest tiers as JSON")
	)
	flag.Parse()

	cfg := config.DefaultAppConfig()
	if *configPath != "" {
		loaded, err := config.LoadApp(*configPath)
		if err != nil {
			log.Errorf("load config %s: %v", *configPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "rowid":
			cfg.RowIDColumn = *rowID
		case "log-level":
			cfg.LogLevel = *logLevel
		case "store":
			cfg.Store.Type = *storeType
		case "redis-addr":
			cfg.Store.Addr = *storeAddr
		}
	})
	cfg.Input = append(cfg.Input, flag.Args()...)
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &App{Config: cfg, In: os.Stdin, Out: os.Stdout, JSON: *asJSON}
	if err := app.Run(ctx); err != nil {
		log.Errorf("itemfeedback: %v", err)
		stop()
		os.Exit(1)
	}
}
