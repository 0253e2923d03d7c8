package main

import (
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/integrii/flaggy"

	"gamelife/src/life"
	"gamelife/src/sim"
	"gamelife/src/view"
)

//extra rules the binary ships beyond the registry's built-ins
var extraRules = map[string]life.Rule{
	"highlife": life.HighLifeRule{},
}

func main() {
	quiet, config := initOptions()

	rules := life.NewRegistry()
	for name, rule := range extraRules {
		rules.Register(name, rule)
	}
	if _, err := rules.Get(config.Rule); err != nil {
		flaggy.ShowHelpAndExit("unknown rule: " + config.Rule +
			" (available: " + strings.Join(rules.Names(), ", ") + ")")
	}

	if config.Interactive {
		s, err := sim.NewSession(config, rules)
		if err != nil {
			reportError(err)
		}
		view.NewConsoleUI(s, config).Start()
		return
	}

	source := config.Pattern
	if source == "" {
		source = config.Template
	}
	console := sim.NewConsoleEmitter()
	console.Quiet = quiet

	runner := sim.NewRunner(config, rules)
	err := runner.Run(
		sim.NewSnapshotEmitter(config.LogDir, source, config.Rule),
		console,
	)
	if err != nil {
		reportError(err)
	}
}

func initOptions() (quiet bool, config sim.Config) {

	//the config file is resolved before the flag set is built, so flag
	//values override file values
	config = sim.DefaultConfig()
	if path := configFileArg(os.Args[1:]); path != "" {
		var err error
		if config, err = sim.LoadConfig(path); err != nil {
			log.WithError(err).Fatal("config load failed")
		}
	}

	var configFile string
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&configFile, "f", "config", "Path to a YAML config file")
	flaggy.String(&config.Pattern, "p", "pattern", "Pattern file with (row, col) */. lines")
	flaggy.String(&config.Template, "t", "template", "Built-in template to seed with ["+strings.Join(sim.TemplateNames(), "|")+"]")
	flaggy.Int(&config.Rows, "y", "rows", "Number of board rows")
	flaggy.Int(&config.Cols, "x", "cols", "Number of board columns")
	flaggy.Int(&config.Generations, "g", "generations", "Number of generations to simulate")
	flaggy.String(&config.Rule, "u", "rule", "Transition rule name")
	flaggy.String(&config.LogDir, "o", "logdir", "Directory for generation snapshots")
	flaggy.Duration(&config.Interval, "i", "interval", "Delay between generations, for example 150ms")
	flaggy.Bool(&config.Interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&quiet, "q", "quiet", "Suppress frame output, keep progress lines")

	flaggy.Parse()

	return
}

//configFileArg pre-scans the raw arguments for the config file flag
func configFileArg(args []string) string {
	for i, arg := range args {
		if arg == "-f" || arg == "--config" {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func reportError(err error) {
	if life.IsGameError(err) {
		//deterministic input-validation failure, one line is enough
		log.Fatalf("[error] %v", err)
	}
	log.WithError(err).Fatal("simulation failed")
}
