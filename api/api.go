package api

import (
	"encoding/json"
	"github.com/arkadda/seri/auction"
	"github.com/arkadda/seri/auctiondb"
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/explorer"
	"github.com/arkadda/seri/log"
	"github.com/gorilla/mux"
	"net/http"
)

var apiLogger = log.ModuleLogger("api")

type ErrorResponse struct {
	Msg string `json:"msg"`
}

var invalidJSONRes = &ErrorResponse{
	Msg: "Mal-formed JSON payload.",
}

func UnmarshalRequestJSON(w http.ResponseWriter, r *http.Request, in interface{}) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(in); err == nil {
		return true
	}
	w.WriteHeader(400)
	MarshalResponseJSON(w, invalidJSONRes)
	return false
}

func MarshalErrorJSON(w http.ResponseWriter, err error, code int) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	apiLogger.Error("error handling request", "err", err)
	MarshalResponseJSON(w, &ErrorResponse{Msg: err.Error()})
}

func MarshalResponseJSON(w http.ResponseWriter, out interface{}) {
	data, err := json.Marshal(out)
	if err != nil {
		apiLogger.Fatal("error marshaling JSON response, shutting down", "err", err)
	}
	if _, err := w.Write(data); err != nil {
		apiLogger.Warning("error writing JSON response")
	}
}

type API struct {
	network  *chain.Network
	contract *chain.AuctionContract
	addr     *chain.Address
	explorer *explorer.Client
	opener   *auction.Opener
	bidder   *auction.Bidder
	store    *auctiondb.Store
	apiKey   string
}

func NewAPI(
	network *chain.Network,
	contract *chain.AuctionContract,
	addr *chain.Address,
	exp *explorer.Client,
	opener *auction.Opener,
	bidder *auction.Bidder,
	store *auctiondb.Store,
	apiKey string,
) http.Handler {
	api := &API{
		network:  network,
		contract: contract,
		addr:     addr,
		explorer: exp,
		opener:   opener,
		bidder:   bidder,
		store:    store,
		apiKey:   apiKey,
	}
	r := mux.NewRouter()
	r.Use(api.apiKeyMiddleware)
	v1 := r.PathPrefix("/api/v1").Subrouter()
	getOnly(v1.HandleFunc("/status", api.HandleStatusGET))
	getOnly(v1.HandleFunc("/auctions", api.HandleAuctionsGET))
	jsonPostOnly(v1.HandleFunc("/auctions", api.HandleAuctionsPOST))
	getOnly(v1.HandleFunc("/bids", api.HandleBidsGET))
	jsonPostOnly(v1.HandleFunc("/bids", api.HandleBidsPOST))
	return r
}

func (a *API) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.apiKey != "" && r.Header.Get("X-API-Key") != a.apiKey {
			w.WriteHeader(401)
			MarshalResponseJSON(w, &ErrorResponse{Msg: "Unauthorized."})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *API) HandleStatusGET(w http.ResponseWriter, r *http.Request) {
	block, err := a.explorer.CurrentBlock(r.Context())
	if err != nil {
		MarshalErrorJSON(w, err, 502)
		return
	}
	MarshalResponseJSON(w, &StatusRes{
		Network: a.network.Name,
		Address: a.addr.String(),
		Block:   block,
	})
}

func (a *API) HandleAuctionsGET(w http.ResponseWriter, r *http.Request) {
	boxes, err := a.explorer.UnspentBoxesByAddress(r.Context(), a.contract.Address)
	if err != nil {
		MarshalErrorJSON(w, err, 502)
		return
	}
	MarshalResponseJSON(w, &ListAuctionsRes{Auctions: boxes})
}

func (a *API) HandleAuctionsPOST(w http.ResponseWriter, r *http.Request) {
	req := new(CreateAuctionReq)
	if !UnmarshalRequestJSON(w, r, req) {
		return
	}

	res, err := a.opener.RegisterAuction(r.Context(), &auction.AuctionParams{
		InitialBid:  req.InitialBid,
		BidStep:     req.BidStep,
		EndTime:     req.EndTime,
		BuyItNow:    req.BuyItNow,
		CurrencyID:  req.CurrencyID,
		Description: req.Description,
	})
	if err != nil {
		MarshalErrorJSON(w, err, 500)
		return
	}
	MarshalResponseJSON(w, res)
}

func (a *API) HandleBidsPOST(w http.ResponseWriter, r *http.Request) {
	req := new(CreateBidReq)
	if !UnmarshalRequestJSON(w, r, req) {
		return
	}

	box, err := a.explorer.GetBox(r.Context(), req.BoxID)
	if err != nil {
		MarshalErrorJSON(w, err, 502)
		return
	}

	res, err := a.bidder.RegisterBid(r.Context(), req.Amount, box)
	if err != nil {
		MarshalErrorJSON(w, err, 500)
		return
	}
	MarshalResponseJSON(w, res)
}

func (a *API) HandleBidsGET(w http.ResponseWriter, r *http.Request) {
	bids, err := a.store.ListBids()
	if err != nil {
		MarshalErrorJSON(w, err, 500)
		return
	}
	MarshalResponseJSON(w, &ListBidsRes{Bids: bids})
}

func getOnly(route *mux.Route) *mux.Route {
	return route.Methods("GET")
}

func postOnly(route *mux.Route) *mux.Route {
	return route.Methods("POST")
}

func jsonPostOnly(route *mux.Route) *mux.Route {
	return postOnly(route).Headers("Content-Type", "application/json")
}
