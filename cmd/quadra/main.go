// Command quadra evaluates definite, improper and double integrals with
// classical quadrature rules and reports the error against a reference.
//
//	quadra integrate --func exp_sin4x --rule simpson --a 1 --b 2 --n 10
//	quadra run --config problems.yaml
//	quadra homework
//	quadra list
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("quadra failed")
		os.Exit(1)
	}
}
