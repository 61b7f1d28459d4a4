package inventory

import (
	"atlas-overlay/rest"
	"atlas-overlay/slot"
	"errors"
	"net/http"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			registerGet := rest.RegisterHandler(l)(si)
			r := router.PathPrefix("/characters/{characterId}/overlay").Subrouter()
			r.HandleFunc("", registerGet("get_overlay", handleGetOverlay)).Methods(http.MethodGet)
			r.HandleFunc("/inventories", registerGet("get_inventories", handleGetInventories(db))).Methods(http.MethodGet)
			r.HandleFunc("/inventories/{inventoryId}", registerGet("get_inventory", handleGetInventory(db))).Methods(http.MethodGet)
			r.HandleFunc("/inventories/{inventoryId}/slots", registerGet("get_inventory_slots", handleGetInventorySlots(db))).Methods(http.MethodGet)
		}
	}
}

func handleGetOverlay(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			t := tenant.MustFromContext(d.Context())
			rm := OverlayRestModel{
				Id:      characterId,
				Visible: GetVisibilityRegistry().Get(t, characterId),
			}

			query := r.URL.Query()
			queryParams := jsonapi.ParseQueryFields(&query)
			server.MarshalResponse[OverlayRestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
		}
	})
}

func handleGetInventories(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				ms, err := NewProcessor(d.Logger(), d.Context(), db).GetByCharacterId(characterId)
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				rms, err := model.SliceMap(Transform)(model.FixedProvider(ms))(model.ParallelMap())()
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[[]RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rms)
			}
		})
	}
}

func handleGetInventory(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return rest.ParseInventoryId(d.Logger(), func(inventoryId string) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					m, err := NewProcessor(d.Logger(), d.Context(), db).GetById(characterId, inventoryId)
					if errors.Is(err, gorm.ErrRecordNotFound) {
						w.WriteHeader(http.StatusNotFound)
						return
					}
					if err != nil {
						w.WriteHeader(http.StatusInternalServerError)
						return
					}

					rm, err := model.Map(Transform)(model.FixedProvider(m))()
					if err != nil {
						d.Logger().WithError(err).Errorf("Creating REST model.")
						w.WriteHeader(http.StatusInternalServerError)
						return
					}

					query := r.URL.Query()
					queryParams := jsonapi.ParseQueryFields(&query)
					server.MarshalResponse[RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
				}
			})
		})
	}
}

func handleGetInventorySlots(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return rest.ParseInventoryId(d.Logger(), func(inventoryId string) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					m, err := NewProcessor(d.Logger(), d.Context(), db).GetById(characterId, inventoryId)
					if errors.Is(err, gorm.ErrRecordNotFound) {
						w.WriteHeader(http.StatusNotFound)
						return
					}
					if err != nil {
						w.WriteHeader(http.StatusInternalServerError)
						return
					}

					rms, err := model.SliceMap(slot.Transform)(model.FixedProvider(m.Slots()))(model.ParallelMap())()
					if err != nil {
						d.Logger().WithError(err).Errorf("Creating REST model.")
						w.WriteHeader(http.StatusInternalServerError)
						return
					}

					query := r.URL.Query()
					queryParams := jsonapi.ParseQueryFields(&query)
					server.MarshalResponse[[]slot.RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rms)
				}
			})
		})
	}
}
