package catalog

import (
	"atlas-overlay/rest"
	"fmt"

	"github.com/Chronicle20/atlas-rest/requests"
)

const (
	Resource = "data/items"
	ByName   = Resource + "/%s"
)

func getBaseRequest() string {
	return requests.RootUrl("DATA")
}

func requestByName(name string) requests.Request[RestModel] {
	return rest.MakeGetRequest[RestModel](fmt.Sprintf(getBaseRequest()+ByName, name))
}
