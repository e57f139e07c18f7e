package main

import (
	"flag"
	"log"
	"strings"

	"github.com/labstack/echo/v4"

	kcg "github.com/echo-commerce/echo-commerce/pkg/configs/gateway"
	"github.com/echo-commerce/echo-commerce/pkg/echoutil"
)

// ecgw is a thin HTTP gateway in front of ecd. It relays /api/...
// as-is, so that browsers and the ec CLI can reach the backend through
// a single public origin.
func main() {

	configPath := flag.String("config-path", "", "gateway config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	e := echo.New()

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := kcg.LoadGatewayConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}
	backendRoot := strings.TrimSuffix(conf.BackendApiRoot, "/")

	proxy := func(c echo.Context) error {
		url := backendRoot + c.Request().URL.Path
		if rq := c.Request().URL.RawQuery; rq != "" {
			url += "?" + rq
		}

		return echoutil.Proxy(&c, url)
	}
	e.Any("/api/*", proxy)
	e.Any("/api", proxy)

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
