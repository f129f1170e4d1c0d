package clusterdomain

import "errors"

var (
	ErrClusterNotFound      = errors.New("cluster not found")
	ErrClusterAlreadyExists = errors.New("cluster already exists")
	ErrInvalidClusterName   = errors.New("invalid cluster name")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrClusterNotReady      = errors.New("cluster is not ready")
	ErrClusterTerminal      = errors.New("cluster is in a terminal state")
	ErrStateConflict        = errors.New("cluster state changed concurrently")
)
