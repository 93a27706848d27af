package helpers

import "github.com/sirupsen/logrus"

func HandleError(err error) {
	if err != nil {
		logrus.Panic(err)
	}
}
