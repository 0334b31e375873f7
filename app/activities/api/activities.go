package main

import (
	"flag"
	"fmt"

	"mergington-hub/app/activities/api/internal/config"
	"mergington-hub/app/activities/api/internal/handler"
	"mergington-hub/app/activities/api/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/activities-api.yaml", "config file path")

func main() {
	flag.Parse()

	// 1. Load configuration
	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 2. Create the REST server
	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	// 3. Build the service context (registry seeded here)
	ctx := svc.NewServiceContext(c)

	// 4. Register routes
	handler.RegisterHandlers(server, ctx)

	// 5. Serve
	fmt.Printf("Starting activities-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// activities-api is the HTTP surface of the extracurricular signup system:
//   - GET    /activities                      list all activities
//   - POST   /activities/:name/signup        sign a student up (email query param)
//   - DELETE /activities/:name/unregister    remove a student (email query param)
//   - GET    /                               redirect to the static index page
//
// Run:
//   go run activities.go -f etc/activities-api.yaml
