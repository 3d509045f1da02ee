package utils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func PrintAndExit(args ...interface{}) {
	logrus.Println(args...)
	fmt.Println(args...)
	os.Exit(1)
}

func Exit(rc int) {
	os.Exit(rc)
}
