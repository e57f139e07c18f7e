package main

import (
	"errors"
	"flag"
	"log"

	"github.com/labstack/echo/v4"

	apierr "github.com/echo-commerce/echo-commerce/api/types/errors"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/handlers"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/password"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/store"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/token"
	kcb "github.com/echo-commerce/echo-commerce/pkg/configs/backend"
	"github.com/echo-commerce/echo-commerce/pkg/echoutil"
)

func main() {

	configPath := flag.String("config-path", "", "backend config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	e := echo.New()

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(normalizeError(err), ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := kcb.LoadBackendConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}
	expiry, err := conf.Expiry()
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	hasher := password.Bcrypt{}
	s := store.New()
	if conf.SeedFile != "" {
		seed, err := store.LoadSeed(conf.SeedFile)
		if err != nil {
			log.Fatalf("can not read seed file %s: %s", conf.SeedFile, err)
		}
		if err := s.ApplySeed(seed, hasher.Hash); err != nil {
			log.Fatalf("can not apply seed: %s", err)
		}
	}

	tokens := token.New([]byte(conf.TokenSecret), expiry)

	handlers.Mount(e, s, tokens, hasher)

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+conf.ServerPort, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + conf.ServerPort))
	}
}

// normalizeError forces every error response into the
// {"detail": ...} shape, echo's own errors (404, 405, ...) included.
func normalizeError(err error) error {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return err
	}
	switch msg := he.Message.(type) {
	case apierr.ErrorMessage:
		return he
	case string:
		return echo.NewHTTPError(
			he.Code, apierr.ErrorMessage{Detail: apierr.Detail{Message: msg}},
		).SetInternal(err)
	default:
		return he
	}
}
