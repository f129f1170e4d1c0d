package clusterdomain

import (
	"context"

	longrunning "cloud.google.com/go/longrunning/autogen/longrunningpb"
)

type ClusterCreator interface {
	CreateCluster(ctx context.Context, args *CreateClusterArgs) (*CreateClusterResult, error)
}

type CreateClusterArgs struct {
	DisplayName string
	NodeCount   int32
}

type CreateClusterResult struct {
	Cluster   *Cluster
	Operation *longrunning.Operation
}

type ClusterGetter interface {
	GetCluster(ctx context.Context, args *GetClusterArgs) (*GetClusterResult, error)
}

type GetClusterArgs struct {
	Name ClusterName
}

type GetClusterResult struct {
	Cluster *Cluster
}

type ClusterLister interface {
	ListClusters(ctx context.Context, args *ListClustersArgs) (*ListClustersResult, error)
}

type ListClustersArgs struct {
	PageSize  int32
	PageToken string
}

type ListClustersResult struct {
	Clusters      []*Cluster
	NextPageToken string
}

type ClusterDeleter interface {
	DeleteCluster(ctx context.Context, args *DeleteClusterArgs) (*DeleteClusterResult, error)
}

type DeleteClusterArgs struct {
	Name ClusterName
}

type DeleteClusterResult struct {
	Operation *longrunning.Operation
}

type ClusterExporter interface {
	ExportCluster(ctx context.Context, args *ExportClusterArgs) (*ExportClusterResult, error)
}

type ExportClusterArgs struct {
	Name ClusterName
}

type ExportClusterResult struct {
	Operation *longrunning.Operation
}

// Work messages travel from the gateway to the agent over the work stream.

type ProvisionClusterMessage struct {
	ClusterName   ClusterName `json:"cluster_name"`
	OperationName string      `json:"operation_name"`
}

type TeardownClusterMessage struct {
	ClusterName   ClusterName `json:"cluster_name"`
	OperationName string      `json:"operation_name"`
}

type ExportClusterMessage struct {
	ClusterName   ClusterName `json:"cluster_name"`
	OperationName string      `json:"operation_name"`
}
