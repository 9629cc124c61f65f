package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sniperHW/flylist/demo"
	"github.com/sniperHW/flylist/logger"
)

func main() {

	config := flag.String("config", "", "toml config, built-in defaults when empty")

	flag.Parse()

	conf := demo.DefaultConfig()

	if *config != "" {
		var err error
		if conf, err = demo.LoadConfig(*config); nil != err {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	demo.InitLogger(logger.New("listdemo.log", conf.Log))

	if err := demo.Run(os.Stdout, conf); nil != err {
		demo.GetSugar().Error(err)
		os.Exit(1)
	}

	demo.GetSugar().Infof("listdemo done")
}
