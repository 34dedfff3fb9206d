package main

import (
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/tools/linters/enumvalidator"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
