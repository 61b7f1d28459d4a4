package main

import (
	"atlas-overlay/database"
	"atlas-overlay/inventory"
	"atlas-overlay/kafka/consumer/bridge"
	session2 "atlas-overlay/kafka/consumer/session"
	"atlas-overlay/logger"
	"atlas-overlay/service"
	"atlas-overlay/session"
	"atlas-overlay/slot"
	"atlas-overlay/tracing"
	"os"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-rest/server"
)

const serviceName = "atlas-overlay"
const consumerGroupId = "Inventory Overlay Service"

type Server struct {
	baseUrl string
	prefix  string
}

func (s Server) GetBaseURL() string {
	return s.baseUrl
}

func (s Server) GetPrefix() string {
	return s.prefix
}

func GetServer() Server {
	return Server{
		baseUrl: "",
		prefix:  "/api/",
	}
}

func main() {
	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")

	tdm := service.GetTeardownManager()

	tc, err := tracing.InitTracer(l)(serviceName)
	if err != nil {
		l.WithError(err).Fatal("Unable to initialize tracer.")
	}

	db := database.Connect(l, database.SetMigrations(inventory.Migration, slot.Migration))

	cmf := consumer.GetManager().AddConsumer(l, tdm.Context(), tdm.WaitGroup())
	bridge.InitConsumers(l)(cmf)(consumerGroupId)
	session2.InitConsumers(l)(cmf)(consumerGroupId)
	bridge.InitHandlers(l)(db)(consumer.GetManager().RegisterHandler)
	session2.InitHandlers(l)(db)(consumer.GetManager().RegisterHandler)

	server.New(l).
		WithContext(tdm.Context()).
		WithWaitGroup(tdm.WaitGroup()).
		SetBasePath(GetServer().GetPrefix()).
		SetPort(os.Getenv("REST_PORT")).
		AddRouteInitializer(inventory.InitResource(GetServer())(db)).
		AddRouteInitializer(session.InitResource(GetServer())(db)).
		Run()

	tdm.TeardownFunc(tracing.Teardown(l)(tc))
	tdm.TeardownFunc(session.GetRegistry().StopAll)

	tdm.Wait()
	l.Infoln("Service shutdown.")
}
