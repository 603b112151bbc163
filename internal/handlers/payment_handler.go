package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/stylohub/stylohub-api/internal/httperr"
	"github.com/stylohub/stylohub-api/internal/httpresp"
	"github.com/stylohub/stylohub-api/internal/store"
)

// PaymentHandler gera um link de checkout (preference do Mercado Pago)
// para um agendamento do dashboard — a aba de finanças usa isso para
// cobrar o cliente.
type PaymentHandler struct {
	store  *store.Store
	client preference.Client
}

func NewPaymentHandler(st *store.Store, accessToken string) *PaymentHandler {
	h := &PaymentHandler{store: st}

	if accessToken != "" {
		cfg, err := mpconfig.New(accessToken)
		if err != nil {
			log.Printf("mercadopago disabled: %v", err)
			return h
		}
		h.client = preference.NewClient(cfg)
	}

	return h
}

func (h *PaymentHandler) CreateLink(c *gin.Context) {
	if h.client == nil {
		httperr.Internal(c, "payments_unconfigured", "Pagamentos indisponíveis.")
		return
	}

	id := c.Param("id")

	st := h.store.Snapshot()
	var found bool
	var service string
	var price float64
	for _, a := range st.Appointments {
		if a.ID == id {
			found = true
			service = a.Service
			price = a.Price
			break
		}
	}
	if !found {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	pref, err := h.client.Create(c.Request.Context(), preference.Request{
		ExternalReference: id,
		Items: []preference.ItemRequest{
			{
				Title:     service,
				Quantity:  1,
				UnitPrice: price,
			},
		},
	})
	if err != nil {
		httperr.Internal(c, "payment_link_failed", "Erro ao gerar link de pagamento.")
		return
	}

	httpresp.OK(c, gin.H{
		"preference_id": pref.ID,
		"init_point":    pref.InitPoint,
	})
}
