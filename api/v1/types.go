package v1

import "time"

// Granularity defines model for Granularity.
type Granularity string

// Defines values for Granularity.
const (
	GranularityCollectionHour Granularity = "collectionHour"
	GranularityDay            Granularity = "day"
	GranularityWeek           Granularity = "week"
)

// GeneratorStatusState defines model for GeneratorStatus.State.
type GeneratorStatusState string

// Defines values for GeneratorStatusState.
const (
	GeneratorStatusStateReady      GeneratorStatusState = "ready"
	GeneratorStatusStateGenerating GeneratorStatusState = "generating"
	GeneratorStatusStateGenerated  GeneratorStatusState = "generated"
	GeneratorStatusStateUploading  GeneratorStatusState = "uploading"
	GeneratorStatusStateUploaded   GeneratorStatusState = "uploaded"
	GeneratorStatusStateError      GeneratorStatusState = "error"
)

// Page is the envelope of every list response. Count echoes the requested page size,
// or the number of items when the page is unlimited.
type Page[T any] struct {
	Items  []T `json:"items"`
	Count  int `json:"count"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// Common holds the fields carried by every item.
type Common struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Generation  int    `json:"generation"`
	ResourceUri string `json:"resourceUri"`
	CustomerId  string `json:"customerId"`
	ConsoleUri  string `json:"consoleUri"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// VolumesConsumption defines model for VolumesConsumption.
type VolumesConsumption struct {
	Common
	NumVolumes                       int     `json:"numVolumes"`
	TotalSizeInBytes                 int64   `json:"totalSizeInBytes"`
	UtilizedSizeInBytes              int64   `json:"utilizedSizeInBytes"`
	Cost                             float64 `json:"cost"`
	Currency                         string  `json:"currency"`
	PreviousMonthCost                float64 `json:"previousMonthCost"`
	PreviousMonthUtilizedSizeInBytes int64   `json:"previousMonthUtilizedSizeInBytes"`
	CurrentMonthCost                 float64 `json:"currentMonthCost"`
	CurrentMonthUtilizedSizeInBytes  int64   `json:"currentMonthUtilizedSizeInBytes"`
}

// SnapshotsConsumption defines model for SnapshotsConsumption.
type SnapshotsConsumption struct {
	Common
	NumSnapshots      int     `json:"numSnapshots"`
	TotalSizeInBytes  int64   `json:"totalSizeInBytes"`
	Cost              float64 `json:"cost"`
	Currency          string  `json:"currency"`
	PreviousMonthCost float64 `json:"previousMonthCost"`
	CurrentMonthCost  float64 `json:"currentMonthCost"`
}

// ClonesConsumption defines model for ClonesConsumption.
type ClonesConsumption struct {
	Common
	NumClones                        int     `json:"numClones"`
	TotalSizeInBytes                 int64   `json:"totalSizeInBytes"`
	UtilizedSizeInBytes              int64   `json:"utilizedSizeInBytes"`
	Cost                             float64 `json:"cost"`
	Currency                         string  `json:"currency"`
	PreviousMonthCost                float64 `json:"previousMonthCost"`
	PreviousMonthUtilizedSizeInBytes int64   `json:"previousMonthUtilizedSizeInBytes"`
	CurrentMonthCost                 float64 `json:"currentMonthCost"`
	CurrentMonthUtilizedSizeInBytes  int64   `json:"currentMonthUtilizedSizeInBytes"`
}

// MonthlyCost is one month of a cost trend.
type MonthlyCost struct {
	Common
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

// TotalUsage is the utilized bytes of one trend bucket.
type TotalUsage struct {
	Common
	TimeStamp         string `json:"timeStamp"`
	TotalUsageInBytes int64  `json:"totalUsageInBytes"`
}

// TotalVolumesCreated defines model for TotalVolumesCreated.
type TotalVolumesCreated struct {
	Common
	UpdatedAt           string `json:"updatedAt"`
	AggrWindowTimestamp string `json:"aggrWindowTimestamp"`
	NumVolumes          int    `json:"numVolumes"`
}

// TotalClonesCreated defines model for TotalClonesCreated.
type TotalClonesCreated struct {
	Common
	UpdatedAt           string `json:"updatedAt"`
	AggrWindowTimestamp string `json:"aggrWindowTimestamp"`
	NumClones           int    `json:"numClones"`
}

// TotalSnapshotsCreated defines model for TotalSnapshotsCreated.
type TotalSnapshotsCreated struct {
	Common
	UpdatedAt            string `json:"updatedAt"`
	AggrWindowTimestamp  string `json:"aggrWindowTimestamp"`
	NumAdhocSnapshots    int    `json:"numAdhocSnapshots"`
	NumPeriodicSnapshots int    `json:"numPeriodicSnapshots"`
}

// ActivityTrendDetail defines model for ActivityTrendDetail.
type ActivityTrendDetail struct {
	TimeStamp  string  `json:"timeStamp"`
	IoActivity float64 `json:"ioActivity"`
}

// Activity is one volume or clone of an activity trend.
type Activity struct {
	Common
	ProvisionType       string                `json:"provisionType"`
	TotalSizeInBytes    int64                 `json:"totalSizeInBytes"`
	UtilizedSizeInBytes int64                 `json:"utilizedSizeInBytes"`
	UtilizedPercentage  float64               `json:"utilizedPercentage"`
	CreatedAt           string                `json:"createdAt"`
	IoActivity          float64               `json:"ioActivity"`
	System              string                `json:"system"`
	SystemId            string                `json:"systemId"`
	ActivityTrendInfo   []ActivityTrendDetail `json:"activityTrendInfo"`
}

// TotalIOActivity is one sample of a single volume or clone IO trend.
type TotalIOActivity struct {
	Common
	TimeStamp  string  `json:"timeStamp"`
	IoActivity float64 `json:"ioActivity"`
}

// SnapshotSize defines model for SnapshotSize.
type SnapshotSize struct {
	NumSnapshots int `json:"numSnapshots"`
}

// SnapshotAge is one age bucket. SizeInfo always holds min, mid and max in that order.
type SnapshotAge struct {
	Common
	Age       string         `json:"age"`
	Bucket    int            `json:"bucket"`
	SizeUnit  string         `json:"sizeUnit"`
	UpdatedAt string         `json:"updatedAt"`
	SizeInfo  []SnapshotSize `json:"sizeInfo"`
}

// SnapshotRetention defines model for SnapshotRetention.
type SnapshotRetention struct {
	Common
	Range                string `json:"range"`
	NumPeriodicSnapshots int    `json:"numPeriodicSnapshots"`
	NumAdhocSnapshots    int    `json:"numAdhocSnapshots"`
}

// Application defines model for Application.
type Application struct {
	Common
	NumVolumes   int    `json:"numVolumes"`
	NumSnapshots int    `json:"numSnapshots"`
	NumClones    int    `json:"numClones"`
	System       string `json:"system"`
	SystemId     string `json:"systemId"`
}

// ApplicationVolume defines model for ApplicationVolume.
type ApplicationVolume struct {
	Common
	NumSnapshots        int    `json:"numSnapshots"`
	NumClones           int    `json:"numClones"`
	UtilizedSizeInBytes int64  `json:"utilizedSizeInBytes"`
	TotalSizeInBytes    int64  `json:"totalSizeInBytes"`
	System              string `json:"system"`
	SystemId            string `json:"systemId"`
	Country             string `json:"country"`
	State               string `json:"state"`
	City                string `json:"city"`
	PostalCode          string `json:"postalCode"`
}

// ApplicationSnapshot defines model for ApplicationSnapshot.
type ApplicationSnapshot struct {
	Common
	TotalSizeInBytes int64  `json:"totalSizeInBytes"`
	CreatedAt        string `json:"createdAt"`
	ExpiresAt        string `json:"expiresAt"`
	NumClones        int    `json:"numClones"`
}

// ApplicationClone defines model for ApplicationClone.
type ApplicationClone struct {
	Common
	UtilizedSizeInBytes int64  `json:"utilizedSizeInBytes"`
	TotalSizeInBytes    int64  `json:"totalSizeInBytes"`
	CreatedAt           string `json:"createdAt"`
	NumSnapshots        int    `json:"numSnapshots"`
}

// InventorySummary defines model for InventorySummary.
type InventorySummary struct {
	Common
	NumSystems          int     `json:"numSystems"`
	UtilizedSizeInBytes int64   `json:"utilizedSizeInBytes"`
	TotalSizeInBytes    int64   `json:"totalSizeInBytes"`
	Cost                float64 `json:"cost"`
	Currency            string  `json:"currency"`
}

// VolumeUsage is the last collected usage of one volume.
type VolumeUsage struct {
	Common
	CreatedAt           string `json:"createdAt"`
	ProvisionType       string `json:"provisionType"`
	UtilizedSizeInBytes int64  `json:"utilizedSizeInBytes"`
	TotalSizeInBytes    int64  `json:"totalSizeInBytes"`
}

// SnapshotDetail defines model for SnapshotDetail.
type SnapshotDetail struct {
	Common
	System    string `json:"system"`
	SystemId  string `json:"systemId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// StorageArray is one array of a StorageSystem.
type StorageArray struct {
	Name                string  `json:"name"`
	Id                  string  `json:"id"`
	Type                string  `json:"type"`
	Cost                float64 `json:"cost"`
	PurchaseCost        float64 `json:"purchaseCost"`
	Currency            string  `json:"currency"`
	MonthsToDepreciate  int     `json:"monthsToDepreciate"`
	BoughtAt            string  `json:"boughtAt"`
	UtilizedSizeInBytes int64   `json:"utilizedSizeInBytes"`
	TotalSizeInBytes    int64   `json:"totalSizeInBytes"`
}

// StorageSystem defines model for StorageSystem.
type StorageSystem struct {
	Common
	NumArrays           int            `json:"numArrays"`
	PostalCode          string         `json:"postalCode"`
	City                string         `json:"city"`
	State               string         `json:"state"`
	Country             string         `json:"country"`
	UtilizedSizeInBytes int64          `json:"utilizedSizeInBytes"`
	TotalSizeInBytes    int64          `json:"totalSizeInBytes"`
	UtilizedPercentage  float64        `json:"utilizedPercentage"`
	Cost                float64        `json:"cost"`
	PurchaseCost        float64        `json:"purchaseCost"`
	Currency            string         `json:"currency"`
	MonthsToDepreciate  int            `json:"monthsToDepreciate"`
	BoughtAt            string         `json:"boughtAt"`
	NumVolumes          int            `json:"numVolumes"`
	NumSnapshots        int            `json:"numSnapshots"`
	NumClones           int            `json:"numClones"`
	ArrayInfo           []StorageArray `json:"arrayInfo"`
}

// ProductInfo is one array of the product details of a storage system.
type ProductInfo struct {
	Common
	SerialNumber string `json:"serialNumber"`
	DeviceType   string `json:"deviceType"`
}

// GeneratorStatus defines model for GeneratorStatus.
type GeneratorStatus struct {
	State     GeneratorStatusState `json:"state"`
	RunId     *string              `json:"runId,omitempty"`
	OutputDir *string              `json:"outputDir,omitempty"`
	Customers []string             `json:"customers"`
	Documents int                  `json:"documents"`
	Error     *string              `json:"error,omitempty"`
}

// CustomerParams selects the customer of a single-object query.
type CustomerParams struct {
	CustomerId string `form:"customerId" json:"customerId"`
}

// ListParams selects a customer and a page.
type ListParams struct {
	CustomerId string `form:"customerId" json:"customerId"`
	PageLimit  *int   `form:"pageLimit,omitempty" json:"pageLimit,omitempty"`
	PageOffset *int   `form:"pageOffset,omitempty" json:"pageOffset,omitempty"`
}

// ApplicationVolumesParams defines parameters for GetApplicationVolumes.
type ApplicationVolumesParams struct {
	ListParams
	SystemId string `form:"systemId" json:"systemId"`
}

// VolumeUsageParams defines parameters for GetVolumeUsage.
type VolumeUsageParams struct {
	CustomerId string `form:"customerId" json:"customerId"`
	SystemId   string `form:"systemId" json:"systemId"`
}

// TrendParams selects a customer, a time window and a page.
type TrendParams struct {
	ListParams
	StartDate   time.Time    `form:"start_date" json:"start_date"`
	EndDate     time.Time    `form:"end_date" json:"end_date"`
	Granularity *Granularity `form:"granularity,omitempty" json:"granularity,omitempty"`
}

// ActivityTrendParams defines parameters for the volume and clone activity trends.
// MinSize and MaxSize bind minVolumeSize/maxVolumeSize or minCloneSize/maxCloneSize.
type ActivityTrendParams struct {
	ListParams
	ProvisionType *string   `form:"provisionType,omitempty" json:"provisionType,omitempty"`
	MinIo         *float64  `form:"minIo,omitempty" json:"minIo,omitempty"`
	MaxIo         *float64  `form:"maxIo,omitempty" json:"maxIo,omitempty"`
	MinSize       *int64    `json:"minSize,omitempty"`
	MaxSize       *int64    `json:"maxSize,omitempty"`
	Sort          *[]string `form:"sort,omitempty" json:"sort,omitempty"`
}

// VolumeUsageTrendParams defines parameters for GetVolumeUsageTrend.
type VolumeUsageTrendParams struct {
	TrendParams
	SystemId string `form:"systemId" json:"systemId"`
}
