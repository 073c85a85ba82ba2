package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /volumes-consumption)
	GetVolumesConsumption(c *gin.Context, params CustomerParams)
	// (GET /volumes-cost-trend)
	GetVolumesCostTrend(c *gin.Context, params TrendParams)
	// (GET /volumes-usage-trend)
	GetVolumesUsageTrend(c *gin.Context, params TrendParams)
	// (GET /volumes-creation-trend)
	GetVolumesCreationTrend(c *gin.Context, params TrendParams)
	// (GET /volumes-activity-trend)
	GetVolumesActivityTrend(c *gin.Context, params ActivityTrendParams)
	// (GET /volumes/{volumeId}/io-trend)
	GetVolumeIoTrend(c *gin.Context, volumeId string, params TrendParams)
	// (GET /volumes/{volumeId}/snapshots)
	GetVolumeSnapshots(c *gin.Context, volumeId string, params ListParams)
	// (GET /volumes/{volumeId}/usage)
	GetVolumeUsage(c *gin.Context, volumeId string, params VolumeUsageParams)
	// (GET /volumes/{volumeId}/usage-trend)
	GetVolumeUsageTrend(c *gin.Context, volumeId string, params VolumeUsageTrendParams)

	// (GET /snapshots-consumption)
	GetSnapshotsConsumption(c *gin.Context, params CustomerParams)
	// (GET /snapshots-cost-trend)
	GetSnapshotsCostTrend(c *gin.Context, params TrendParams)
	// (GET /snapshots-usage-trend)
	GetSnapshotsUsageTrend(c *gin.Context, params TrendParams)
	// (GET /snapshots-creation-trend)
	GetSnapshotsCreationTrend(c *gin.Context, params TrendParams)
	// (GET /snapshots-age-trend)
	GetSnapshotsAgeTrend(c *gin.Context, params CustomerParams)
	// (GET /snapshots-retention-trend)
	GetSnapshotsRetentionTrend(c *gin.Context, params CustomerParams)
	// (GET /snapshots/{snapshotId}/clones)
	GetSnapshotClones(c *gin.Context, snapshotId string, params ListParams)
	// (GET /snapshots)
	GetSnapshots(c *gin.Context, params ListParams)

	// (GET /clones-consumption)
	GetClonesConsumption(c *gin.Context, params CustomerParams)
	// (GET /clones-cost-trend)
	GetClonesCostTrend(c *gin.Context, params TrendParams)
	// (GET /clones-usage-trend)
	GetClonesUsageTrend(c *gin.Context, params TrendParams)
	// (GET /clones-creation-trend)
	GetClonesCreationTrend(c *gin.Context, params TrendParams)
	// (GET /clones-activity-trend)
	GetClonesActivityTrend(c *gin.Context, params ActivityTrendParams)
	// (GET /clones/{cloneId}/io-trend)
	GetCloneIoTrend(c *gin.Context, cloneId string, params TrendParams)

	// (GET /applications)
	GetApplications(c *gin.Context, params ListParams)
	// (GET /applications/{appId}/volumes)
	GetApplicationVolumes(c *gin.Context, appId string, params ApplicationVolumesParams)

	// (GET /inventory-summary)
	GetInventorySummary(c *gin.Context, params CustomerParams)
	// (GET /inventory-cost-trend)
	GetInventoryCostTrend(c *gin.Context, params TrendParams)
	// (GET /inventory-storage-systems)
	GetInventoryStorageSystems(c *gin.Context, params ListParams)
	// (GET /inventory-storage-systems/{systemId}/product-details)
	GetProductDetails(c *gin.Context, systemId string, params ListParams)

	// (GET /generator)
	GetGenerator(c *gin.Context)
	// (POST /generator)
	StartGenerator(c *gin.Context)
	// (DELETE /generator)
	StopGenerator(c *gin.Context)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, Error{Error: err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	base := options.BaseURL
	router.GET(base+"/volumes-consumption", wrapper.GetVolumesConsumption)
	router.GET(base+"/volumes-cost-trend", wrapper.GetVolumesCostTrend)
	router.GET(base+"/volumes-usage-trend", wrapper.GetVolumesUsageTrend)
	router.GET(base+"/volumes-creation-trend", wrapper.GetVolumesCreationTrend)
	router.GET(base+"/volumes-activity-trend", wrapper.GetVolumesActivityTrend)
	router.GET(base+"/volumes/:volumeId/io-trend", wrapper.GetVolumeIoTrend)
	router.GET(base+"/volumes/:volumeId/snapshots", wrapper.GetVolumeSnapshots)
	router.GET(base+"/volumes/:volumeId/usage", wrapper.GetVolumeUsage)
	router.GET(base+"/volumes/:volumeId/usage-trend", wrapper.GetVolumeUsageTrend)
	router.GET(base+"/snapshots-consumption", wrapper.GetSnapshotsConsumption)
	router.GET(base+"/snapshots-cost-trend", wrapper.GetSnapshotsCostTrend)
	router.GET(base+"/snapshots-usage-trend", wrapper.GetSnapshotsUsageTrend)
	router.GET(base+"/snapshots-creation-trend", wrapper.GetSnapshotsCreationTrend)
	router.GET(base+"/snapshots-age-trend", wrapper.GetSnapshotsAgeTrend)
	router.GET(base+"/snapshots-retention-trend", wrapper.GetSnapshotsRetentionTrend)
	router.GET(base+"/snapshots", wrapper.GetSnapshots)
	router.GET(base+"/snapshots/:snapshotId/clones", wrapper.GetSnapshotClones)
	router.GET(base+"/clones-consumption", wrapper.GetClonesConsumption)
	router.GET(base+"/clones-cost-trend", wrapper.GetClonesCostTrend)
	router.GET(base+"/clones-usage-trend", wrapper.GetClonesUsageTrend)
	router.GET(base+"/clones-creation-trend", wrapper.GetClonesCreationTrend)
	router.GET(base+"/clones-activity-trend", wrapper.GetClonesActivityTrend)
	router.GET(base+"/clones/:cloneId/io-trend", wrapper.GetCloneIoTrend)
	router.GET(base+"/applications", wrapper.GetApplications)
	router.GET(base+"/applications/:appId/volumes", wrapper.GetApplicationVolumes)
	router.GET(base+"/inventory-summary", wrapper.GetInventorySummary)
	router.GET(base+"/inventory-cost-trend", wrapper.GetInventoryCostTrend)
	router.GET(base+"/inventory-storage-systems", wrapper.GetInventoryStorageSystems)
	router.GET(base+"/inventory-storage-systems/:systemId/product-details", wrapper.GetProductDetails)
	router.GET(base+"/generator", wrapper.GetGenerator)
	router.POST(base+"/generator", wrapper.StartGenerator)
	router.DELETE(base+"/generator", wrapper.StopGenerator)
}

// bindError reports a missing or malformed parameter.
type bindError struct {
	param string
	err   error
}

func (e *bindError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.param, e.err)
}

func (e *bindError) Unwrap() error {
	return e.err
}

func bindQuery(c *gin.Context, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, c.Request.URL.Query(), dest); err != nil {
		return &bindError{param: name, err: err}
	}
	return nil
}

func bindPath(c *gin.Context, name string, dest *string) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), dest, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		return &bindError{param: name, err: err}
	}
	return nil
}

func bindCustomerParams(c *gin.Context) (CustomerParams, error) {
	var params CustomerParams
	err := bindQuery(c, "customerId", true, &params.CustomerId)
	return params, err
}

func bindListParams(c *gin.Context) (ListParams, error) {
	var params ListParams
	if err := bindQuery(c, "customerId", true, &params.CustomerId); err != nil {
		return params, err
	}
	if err := bindQuery(c, "pageLimit", false, &params.PageLimit); err != nil {
		return params, err
	}
	if err := bindQuery(c, "pageOffset", false, &params.PageOffset); err != nil {
		return params, err
	}
	return params, nil
}

func bindTrendParams(c *gin.Context) (TrendParams, error) {
	var (
		params TrendParams
		err    error
	)
	if params.ListParams, err = bindListParams(c); err != nil {
		return params, err
	}
	if err = bindQuery(c, "start_date", true, &params.StartDate); err != nil {
		return params, err
	}
	if err = bindQuery(c, "end_date", true, &params.EndDate); err != nil {
		return params, err
	}
	if err = bindQuery(c, "granularity", false, &params.Granularity); err != nil {
		return params, err
	}
	return params, nil
}

func bindActivityParams(c *gin.Context, minSize, maxSize string) (ActivityTrendParams, error) {
	var (
		params ActivityTrendParams
		err    error
	)
	if params.ListParams, err = bindListParams(c); err != nil {
		return params, err
	}
	if err = bindQuery(c, "provisionType", false, &params.ProvisionType); err != nil {
		return params, err
	}
	if err = bindQuery(c, "minIo", false, &params.MinIo); err != nil {
		return params, err
	}
	if err = bindQuery(c, "maxIo", false, &params.MaxIo); err != nil {
		return params, err
	}
	if err = bindQuery(c, minSize, false, &params.MinSize); err != nil {
		return params, err
	}
	if err = bindQuery(c, maxSize, false, &params.MaxSize); err != nil {
		return params, err
	}
	if err = bindQuery(c, "sort", false, &params.Sort); err != nil {
		return params, err
	}
	return params, nil
}

// serve runs the middlewares and then the handler, or reports the binding error.
func (siw *ServerInterfaceWrapper) serve(c *gin.Context, err error, handler func()) {
	if err != nil {
		siw.ErrorHandler(c, err, http.StatusBadRequest)
		return
	}
	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}
	handler()
}

// GetVolumesConsumption operation middleware
func (siw *ServerInterfaceWrapper) GetVolumesConsumption(c *gin.Context) {
	params, err := bindCustomerParams(c)
	siw.serve(c, err, func() { siw.Handler.GetVolumesConsumption(c, params) })
}

// GetVolumesCostTrend operation middleware
func (siw *ServerInterfaceWrapper) GetVolumesCostTrend(c *gin.Context) {
	params, err := bindTrendParams(c)
	siw.serve(c, err, func() { siw.Handler.GetVolumesCostTrend(c, params) })
}

// GetVolumesUsageTrend operation middleware
func (siw *ServerInterfaceWrapper) GetVolumesUsageTrend(c *gin.Context) {
	params, err := bindTrendParams(c)
	siw.serve(c, err, func() { siw.Handler.GetVolumesUsageTrend(c, params) })
}

// GetVolumesCreationTrend operation middleware
func (siw *ServerInterfaceWrapper) GetVolumesCreationTrend(c *gin.Context) {
	params, err := bindTrendParams(c)
	siw.serve(c, err, func() { siw.Handler.GetVolumesCreationTrend(c, params) })
}

// GetVolumesActivityTrend operation middleware
func (siw *ServerInterfaceWrapper) GetVolumesActivityTrend(c *gin.Context) {
	params, err := bindActivityParams(c, "minVolumeSize", "maxVolumeSize")
	siw.serve(c, err, func() { siw.Handler.GetVolumesActivityTrend(c, params) })
}

// GetVolumeIoTrend operation middleware
func (siw *ServerInterfaceWrapper) GetVolumeIoTrend(c *gin.Context) {
	var volumeId string
	err := bindPath(c, "volumeId", &volumeId)
	var params TrendParams
	if err == nil {
		params, err = bindTrendParams(c)
	}
	siw.serve(c, err, func() { siw.Handler.GetVolumeIoTrend(c, volumeId, params) })
}

// GetVolumeSnapshots operation middleware
func (siw *ServerInterfaceWrapper) GetVolumeSnapshots(c *gin.Context) {
	var volumeId string
	err := bindPath(c, "volumeId", &volumeId)
	var params ListParams
	if err == nil {
		params, err = bindListParams(c)
	}
	siw.serve(c, err, func() { siw.Handler.GetVolumeSnapshots(c, volumeId, params) })
}

// GetVolumeUsage operation middleware
func (siw *ServerInterfaceWrapper) GetVolumeUsage(c *gin.Context) {
	var (
		volumeId string
		params   VolumeUsageParams
	)
	err := bindPath(c, "volumeId", &volumeId)
	if err == nil {
		err = bindQuery(c, "customerId", true, &params.CustomerId)
	}
	if err == nil {
		err = bindQuery(c, "systemId", true, &params.SystemId)
	}
	siw.serve(c, err, func() { siw.Handler.GetVolumeUsage(c, volumeId, params) })
}

// GetVolumeUsageTrend operation middleware
func (siw *ServerInterfaceWrapper) GetVolumeUsageTrend(c *gin.Context) {
	var (
		volumeId string
		params   VolumeUsageTrendParams
	)
	err := bindPath(c, "volumeId", &volumeId)
	if err == nil {
		params.TrendParams, err = bindTrendParams(c)
	}
	if err == nil {
		err = bindQuery(c, "systemId", true, &params.SystemId)
	}
	siw.serve(c, err, func() { siw.Handler.GetVolumeUsageTrend(c, volumeId, params) })
}

// GetSnapshotsConsumption operation middleware
func (siw *ServerInterfaceWrapper) GetSnapshotsConsumption(c *gin.Context) {
	params, err := bindCustomerParams(c)
	siw.serve(c, err, func() { siw.Handler.GetSnapshotsConsumption(c, params) })
}

// GetSnapshotsCostTrend operation middleware
func (siw *ServerInterfaceWrapper) GetSnapshotsCostTrend(c *gin.Context) {
	params, err := bindTrendParams(c)
	siw.serve(c, err, func() { siw.Handler.GetSnapshotsCostTrend(c, params) })
}

// GetSnapshotsUsageTrend operation middleware
func (siw *ServerInterfaceWrapper) GetSnapshotsUsageTrend(c *gin.Context) {
	params, err := bindTrendParams(c)
	siw.serve(c, err, func() { siw.Handler.GetSnapshotsUsageTrend(c, params) })
}

// GetSnapshotsCreationTrend operation middleware
func (siw *ServerInterfaceWrapper) GetSnapshotsCreationTrend(c *gin.Context) {
	params, err := bindTrendParams(c)
	siw.serve(c, err, func() { siw.Handler.GetSnapshotsCreationTrend(c, params) })
}

// GetSnapshotsAgeTrend operation middleware
func (siw *ServerInterfaceWrapper) GetSnapshotsAgeTrend(c *gin.Context) {
	params, err := bindCustomerParams(c)
	siw.serve(c, err, func() { siw.Handler.GetSnapshotsAgeTrend(c, params) })
}

// GetSnapshotsRetentionTrend operation middleware
func (siw *ServerInterfaceWrapper) GetSnapshotsRetentionTrend(c *gin.Context) {
	params, err := bindCustomerParams(c)
	siw.serve(c, err, func() { siw.Handler.GetSnapshotsRetentionTrend(c, params) })
}

// GetSnapshotClones operation middleware
func (siw *ServerInterfaceWrapper) GetSnapshotClones(c *gin.Context) {
	var snapshotId string
	err := bindPath(c, "snapshotId", &snapshotId)
	var params ListParams
	if err == nil {
		params, err = bindListParams(c)
	}
	siw.serve(c, err, func() { siw.Handler.GetSnapshotClones(c, snapshotId, params) })
}

// GetSnapshots operation middleware
func (siw *ServerInterfaceWrapper) GetSnapshots(c *gin.Context) {
	params, err := bindListParams(c)
	siw.serve(c, err, func() { siw.Handler.GetSnapshots(c, params) })
}

// GetClonesConsumption operation middleware
func (siw *ServerInterfaceWrapper) GetClonesConsumption(c *gin.Context) {
	params, err := bindCustomerParams(c)
	siw.serve(c, err, func() { siw.Handler.GetClonesConsumption(c, params) })
}

// GetClonesCostTrend operation middleware
func (siw *ServerInterfaceWrapper) GetClonesCostTrend(c *gin.Context) {
	params, err := bindTrendParams(c)
	siw.serve(c, err, func() { siw.Handler.GetClonesCostTrend(c, params) })
}

// GetClonesUsageTrend operation middleware
func (siw *ServerInterfaceWrapper) GetClonesUsageTrend(c *gin.Context) {
	params, err := bindTrendParams(c)
	siw.serve(c, err, func() { siw.Handler.GetClonesUsageTrend(c, params) })
}

// GetClonesCreationTrend operation middleware
func (siw *ServerInterfaceWrapper) GetClonesCreationTrend(c *gin.Context) {
	params, err := bindTrendParams(c)
	siw.serve(c, err, func() { siw.Handler.GetClonesCreationTrend(c, params) })
}

// GetClonesActivityTrend operation middleware
func (siw *ServerInterfaceWrapper) GetClonesActivityTrend(c *gin.Context) {
	params, err := bindActivityParams(c, "minCloneSize", "maxCloneSize")
	siw.serve(c, err, func() { siw.Handler.GetClonesActivityTrend(c, params) })
}

// GetCloneIoTrend operation middleware
func (siw *ServerInterfaceWrapper) GetCloneIoTrend(c *gin.Context) {
	var cloneId string
	err := bindPath(c, "cloneId", &cloneId)
	var params TrendParams
	if err == nil {
		params, err = bindTrendParams(c)
	}
	siw.serve(c, err, func() { siw.Handler.GetCloneIoTrend(c, cloneId, params) })
}

// GetApplications operation middleware
func (siw *ServerInterfaceWrapper) GetApplications(c *gin.Context) {
	params, err := bindListParams(c)
	siw.serve(c, err, func() { siw.Handler.GetApplications(c, params) })
}

// GetApplicationVolumes operation middleware
func (siw *ServerInterfaceWrapper) GetApplicationVolumes(c *gin.Context) {
	var (
		appId  string
		params ApplicationVolumesParams
	)
	err := bindPath(c, "appId", &appId)
	if err == nil {
		params.ListParams, err = bindListParams(c)
	}
	if err == nil {
		err = bindQuery(c, "systemId", true, &params.SystemId)
	}
	siw.serve(c, err, func() { siw.Handler.GetApplicationVolumes(c, appId, params) })
}

// GetInventorySummary operation middleware
func (siw *ServerInterfaceWrapper) GetInventorySummary(c *gin.Context) {
	params, err := bindCustomerParams(c)
	siw.serve(c, err, func() { siw.Handler.GetInventorySummary(c, params) })
}

// GetInventoryCostTrend operation middleware
func (siw *ServerInterfaceWrapper) GetInventoryCostTrend(c *gin.Context) {
	params, err := bindTrendParams(c)
	siw.serve(c, err, func() { siw.Handler.GetInventoryCostTrend(c, params) })
}

// GetInventoryStorageSystems operation middleware
func (siw *ServerInterfaceWrapper) GetInventoryStorageSystems(c *gin.Context) {
	params, err := bindListParams(c)
	siw.serve(c, err, func() { siw.Handler.GetInventoryStorageSystems(c, params) })
}

// GetProductDetails operation middleware
func (siw *ServerInterfaceWrapper) GetProductDetails(c *gin.Context) {
	var systemId string
	err := bindPath(c, "systemId", &systemId)
	var params ListParams
	if err == nil {
		params, err = bindListParams(c)
	}
	siw.serve(c, err, func() { siw.Handler.GetProductDetails(c, systemId, params) })
}

// GetGenerator operation middleware
func (siw *ServerInterfaceWrapper) GetGenerator(c *gin.Context) {
	siw.serve(c, nil, func() { siw.Handler.GetGenerator(c) })
}

// StartGenerator operation middleware
func (siw *ServerInterfaceWrapper) StartGenerator(c *gin.Context) {
	siw.serve(c, nil, func() { siw.Handler.StartGenerator(c) })
}

// StopGenerator operation middleware
func (siw *ServerInterfaceWrapper) StopGenerator(c *gin.Context) {
	siw.serve(c, nil, func() { siw.Handler.StopGenerator(c) })
}
