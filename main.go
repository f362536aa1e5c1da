package main

import (
	"github.com/mydrama-tv/mydrama/cmd"
	"github.com/mydrama-tv/mydrama/config"
	"github.com/mydrama-tv/mydrama/internal/cache"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage(viper.GetDuration(key.CatalogCacheTTL))

	cmd.Execute()
}
