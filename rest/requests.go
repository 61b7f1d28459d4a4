package rest

import (
	"github.com/Chronicle20/atlas-rest/requests"
)

func MakeGetRequest[A any](url string, configurators ...requests.Configurator) requests.Request[A] {
	return requests.MakeGetRequest[A](url, configurators...)
}
