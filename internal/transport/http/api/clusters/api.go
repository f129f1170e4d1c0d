package clusterapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	opdomain "github.com/10Narratives/nimbus/internal/domains/operations"
	"github.com/gorilla/mux"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type ClusterService interface {
	clusterdomain.ClusterCreator
	clusterdomain.ClusterGetter
	clusterdomain.ClusterLister
	clusterdomain.ClusterDeleter
	clusterdomain.ClusterExporter
}

type OperationGetter interface {
	opdomain.OperationGetter
}

// Handler serves the REST surface of the platform: cluster mutations return
// protojson-encoded operations that clients poll on /v1/operations/{id}.
type Handler struct {
	clusterService  ClusterService
	operationGetter OperationGetter
}

func NewHandler(clusterService ClusterService, operationGetter OperationGetter) (*Handler, error) {
	if clusterService == nil {
		return nil, errors.New("cluster service is required")
	}
	if operationGetter == nil {
		return nil, errors.New("operation getter is required")
	}

	return &Handler{
		clusterService:  clusterService,
		operationGetter: operationGetter,
	}, nil
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/v1/clusters", h.createCluster).Methods(http.MethodPost)
	r.HandleFunc("/v1/clusters", h.listClusters).Methods(http.MethodGet)
	r.HandleFunc("/v1/clusters/{id:[^:/]+}:export", h.exportCluster).Methods(http.MethodPost)
	r.HandleFunc("/v1/clusters/{id:[^:/]+}", h.getCluster).Methods(http.MethodGet)
	r.HandleFunc("/v1/clusters/{id:[^:/]+}", h.deleteCluster).Methods(http.MethodDelete)
	r.HandleFunc("/v1/operations/{id:[^:/]+}", h.getOperation).Methods(http.MethodGet)
}

type createClusterRequest struct {
	DisplayName string `json:"display_name"`
	NodeCount   int32  `json:"node_count"`
}

type listClustersResponse struct {
	Clusters      []*clusterdomain.Cluster `json:"clusters"`
	NextPageToken string                   `json:"next_page_token,omitempty"`
}

func (h *Handler) createCluster(w http.ResponseWriter, req *http.Request) {
	var body createClusterRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed request body")
		return
	}

	res, err := h.clusterService.CreateCluster(req.Context(), &clusterdomain.CreateClusterArgs{
		DisplayName: body.DisplayName,
		NodeCount:   body.NodeCount,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeProto(w, http.StatusOK, res.Operation)
}

func (h *Handler) getCluster(w http.ResponseWriter, req *http.Request) {
	name, err := clusterdomain.ParseClusterName("clusters/" + mux.Vars(req)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	res, err := h.clusterService.GetCluster(req.Context(), &clusterdomain.GetClusterArgs{Name: name})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res.Cluster)
}

func (h *Handler) listClusters(w http.ResponseWriter, req *http.Request) {
	args := &clusterdomain.ListClustersArgs{
		PageToken: req.URL.Query().Get("page_token"),
	}
	if raw := req.URL.Query().Get("page_size"); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "page_size must be an integer")
			return
		}
		args.PageSize = int32(size)
	}

	res, err := h.clusterService.ListClusters(req.Context(), args)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listClustersResponse{
		Clusters:      res.Clusters,
		NextPageToken: res.NextPageToken,
	})
}

func (h *Handler) deleteCluster(w http.ResponseWriter, req *http.Request) {
	name, err := clusterdomain.ParseClusterName("clusters/" + mux.Vars(req)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	res, err := h.clusterService.DeleteCluster(req.Context(), &clusterdomain.DeleteClusterArgs{Name: name})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeProto(w, http.StatusOK, res.Operation)
}

func (h *Handler) exportCluster(w http.ResponseWriter, req *http.Request) {
	name, err := clusterdomain.ParseClusterName("clusters/" + mux.Vars(req)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	res, err := h.clusterService.ExportCluster(req.Context(), &clusterdomain.ExportClusterArgs{Name: name})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeProto(w, http.StatusOK, res.Operation)
}

func (h *Handler) getOperation(w http.ResponseWriter, req *http.Request) {
	name, err := opdomain.ParseOperationName("operations/" + mux.Vars(req)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	res, err := h.operationGetter.GetOperation(req.Context(), &opdomain.GetOperationArgs{Name: name})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeProto(w, http.StatusOK, res.Operation)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, clusterdomain.ErrClusterNotFound),
		errors.Is(err, opdomain.ErrOperationNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, clusterdomain.ErrInvalidArgument),
		errors.Is(err, clusterdomain.ErrInvalidClusterName),
		errors.Is(err, opdomain.ErrInvalidArgument),
		errors.Is(err, opdomain.ErrInvalidOperationName):
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	case errors.Is(err, clusterdomain.ErrClusterAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", err.Error())
	case errors.Is(err, clusterdomain.ErrClusterNotReady),
		errors.Is(err, clusterdomain.ErrClusterTerminal),
		errors.Is(err, clusterdomain.ErrStateConflict),
		errors.Is(err, opdomain.ErrOperationCompleted):
		writeError(w, http.StatusConflict, "FAILED_PRECONDITION", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

func writeError(w http.ResponseWriter, code int, reason, message string) {
	writeJSON(w, code, errorBody{Error: errorDetail{
		Code:    code,
		Status:  reason,
		Message: message,
	}})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeProto(w http.ResponseWriter, code int, msg proto.Message) {
	b, err := protojson.Marshal(msg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}
