package main

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/valyala/fasthttp"

	"patrimony-engine/internal/engine"
	"patrimony-engine/internal/handler"
	"patrimony-engine/internal/premises"
	"patrimony-engine/internal/salary"
)

type config struct {
	Port             string `env:"PORT" envDefault:"8080"`
	PremisesPath     string `env:"PREMISES_PATH"`
	SalaryServiceURL string `env:"SALARY_SERVICE_URL"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Config: %v", err)
	}

	prem, err := premises.Load(cfg.PremisesPath)
	if err != nil {
		log.Fatalf("Premises: %v", err)
	}

	e := engine.New(prem, salary.New(cfg.SalaryServiceURL))
	h := handler.New(e)

	log.Printf("Patrimony engine starting on port %s", cfg.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
