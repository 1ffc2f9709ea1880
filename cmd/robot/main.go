package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/robomaze/config"
	"github.com/zucenko/robomaze/render"
	"github.com/zucenko/robomaze/script"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	r, u := cfg.NewRobot()
	var target script.Target = r
	var robot fmt.Stringer = r
	var observed render.Observable = r
	if u != nil {
		target, robot, observed = u, u, u
	}

	if cfg.Script != "" {
		s, err := script.ParseFile(cfg.Script)
		if err != nil {
			log.Fatal(err)
		}
		rep, err := s.Run(target)
		log.WithFields(log.Fields{
			"moved":     rep.Moved,
			"rejected":  rep.Rejections(),
			"recharges": rep.Recharges,
			"dives":     rep.Dives,
		}).Info("script finished")
		if err != nil {
			log.Fatal(err)
		}
	}

	log.WithFields(log.Fields{
		"row":     r.Row(),
		"column":  r.Column(),
		"battery": r.Battery(),
	}).Info(render.NewFrame(observed, cfg.UnitSize).Status)
	fmt.Print(render.Text(observed))
	fmt.Println(robot)
}
