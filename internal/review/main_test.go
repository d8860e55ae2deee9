package review

import (
	"os"
	"testing"

	"github.com/avolkhin/complaintbot/core/logger"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(nil); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
