package demo

import (
	"sync"

	"github.com/sniperHW/flylist/logger"
	"go.uber.org/zap"
)

var initOnce sync.Once

func InitLogger(l *zap.Logger) {
	initOnce.Do(func() {
		logger.InitLogger(l)
	})
}

func GetSugar() *zap.SugaredLogger {
	return logger.GetSugar()
}
