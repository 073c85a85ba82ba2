package v1

import (
	"github.com/kubev2v/panorama-mock/internal/models"
	"github.com/kubev2v/panorama-mock/internal/util"
)

const (
	DefaultPageLimit = 10
	resourcePrefix   = "/data-observability/v1alpha1"
)

// Item types as reported in the common "type" field.
const (
	TypeVolumesConsumption     = "volumes consumption"
	TypeVolumesCostTrend       = "volumes cost trend"
	TypeVolumesUsageTrend      = "volumes usage trend"
	TypeVolumesCreationTrend   = "volumes creation trend"
	TypeVolumesActivityTrend   = "volumes activity trend"
	TypeVolumeIoTrend          = "volume io trend"
	TypeSnapshotsConsumption   = "snapshots consumption"
	TypeSnapshotsCostTrend     = "snapshots cost trend"
	TypeSnapshotsUsageTrend    = "snapshots usage trend"
	TypeSnapshotsCreationTrend = "snapshots creation trend"
	TypeSnapshotsAgeTrend      = "snapshots age trend"
	TypeSnapshotsRetention     = "snapshots retention trend"
	TypeClonesConsumption      = "clones consumption"
	TypeClonesCostTrend        = "clones cost trend"
	TypeClonesUsageTrend       = "clones usage trend"
	TypeClonesCreationTrend    = "clones creation trend"
	TypeClonesActivityTrend    = "clones activity trend"
	TypeCloneIoTrend           = "clone io trend"
	TypeApplication            = "application"
	TypeApplicationVolume      = "application volume"
	TypeApplicationSnapshot    = "application snapshot"
	TypeApplicationClone       = "application clone"
	TypeInventorySummary       = "storage systems summary"
	TypeInventoryCostTrend     = "storage systems cost trend"
	TypeVolumeUsage            = "volume usage"
	TypeVolumeUsageTrend       = "volume usage trend"
	TypeSnapshot               = "snapshot"
	TypeStorageSystem          = "storage system"
	TypeProductInfo            = "product details"
)

// NewCommon fills the fields shared by every item.
func NewCommon(typ, customerID string) Common {
	return Common{Type: typ, Generation: 1, CustomerId: customerID}
}

func newResource(typ, customerID, id, name, path string) Common {
	c := NewCommon(typ, customerID)
	c.Id = id
	c.Name = name
	c.ResourceUri = resourcePrefix + path
	return c
}

// NewPage wraps one page of items. Count echoes the requested limit, 10 when none was given.
func NewPage[T any](items []T, limit, offset *int, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	p := Page[T]{Items: items, Count: DefaultPageLimit, Total: total}
	if limit != nil {
		p.Count = *limit
	}
	// A zero limit is unlimited: count the items actually returned.
	if p.Count == 0 {
		p.Count = len(items)
	}
	if offset != nil {
		p.Offset = *offset
	}
	return p
}

// MapItems converts every element of in with f.
func MapItems[M, T any](in []M, f func(M) T) []T {
	out := make([]T, 0, len(in))
	for _, m := range in {
		out = append(out, f(m))
	}
	return out
}

func NewVolumesConsumption(customerID string, m models.Consumption) VolumesConsumption {
	return VolumesConsumption{
		Common:                           NewCommon(TypeVolumesConsumption, customerID),
		NumVolumes:                       m.Count,
		TotalSizeInBytes:                 m.TotalSizeBytes,
		UtilizedSizeInBytes:              m.UtilizedSizeBytes,
		Cost:                             m.Cost,
		Currency:                         m.Currency,
		PreviousMonthCost:                m.PreviousMonthCost,
		PreviousMonthUtilizedSizeInBytes: m.PreviousMonthUtilizedBytes,
		CurrentMonthCost:                 m.CurrentMonthCost,
		CurrentMonthUtilizedSizeInBytes:  m.CurrentMonthUtilizedBytes,
	}
}

func NewSnapshotsConsumption(customerID string, m models.Consumption) SnapshotsConsumption {
	return SnapshotsConsumption{
		Common:            NewCommon(TypeSnapshotsConsumption, customerID),
		NumSnapshots:      m.Count,
		TotalSizeInBytes:  m.TotalSizeBytes,
		Cost:              m.Cost,
		Currency:          m.Currency,
		PreviousMonthCost: m.PreviousMonthCost,
		CurrentMonthCost:  m.CurrentMonthCost,
	}
}

func NewClonesConsumption(customerID string, m models.Consumption) ClonesConsumption {
	return ClonesConsumption{
		Common:                           NewCommon(TypeClonesConsumption, customerID),
		NumClones:                        m.Count,
		TotalSizeInBytes:                 m.TotalSizeBytes,
		UtilizedSizeInBytes:              m.UtilizedSizeBytes,
		Cost:                             m.Cost,
		Currency:                         m.Currency,
		PreviousMonthCost:                m.PreviousMonthCost,
		PreviousMonthUtilizedSizeInBytes: m.PreviousMonthUtilizedBytes,
		CurrentMonthCost:                 m.CurrentMonthCost,
		CurrentMonthUtilizedSizeInBytes:  m.CurrentMonthUtilizedBytes,
	}
}

// CostConverter returns a converter of cost points tagged with typ.
func CostConverter(typ, customerID string) func(models.CostPoint) MonthlyCost {
	return func(m models.CostPoint) MonthlyCost {
		return MonthlyCost{
			Common:   NewCommon(typ, customerID),
			Year:     m.Month.Year(),
			Month:    int(m.Month.Month()),
			Cost:     m.Cost,
			Currency: m.Currency,
		}
	}
}

func NewInventoryCost(customerID string, m models.InventoryCostPoint) MonthlyCost {
	return CostConverter(TypeInventoryCostTrend, customerID)(models.CostPoint(m))
}

func UsageConverter(typ, customerID string) func(models.UsagePoint) TotalUsage {
	return func(m models.UsagePoint) TotalUsage {
		return TotalUsage{
			Common:            NewCommon(typ, customerID),
			TimeStamp:         util.FormatWire(m.Timestamp),
			TotalUsageInBytes: m.UsageBytes,
		}
	}
}

func NewVolumesCreated(customerID string, m models.CreationPoint) TotalVolumesCreated {
	return TotalVolumesCreated{
		Common:              NewCommon(TypeVolumesCreationTrend, customerID),
		UpdatedAt:           util.FormatWire(m.UpdatedAt),
		AggrWindowTimestamp: util.FormatWire(m.AggrWindow),
		NumVolumes:          m.Count,
	}
}

func NewClonesCreated(customerID string, m models.CreationPoint) TotalClonesCreated {
	return TotalClonesCreated{
		Common:              NewCommon(TypeClonesCreationTrend, customerID),
		UpdatedAt:           util.FormatWire(m.UpdatedAt),
		AggrWindowTimestamp: util.FormatWire(m.AggrWindow),
		NumClones:           m.Count,
	}
}

func NewSnapshotsCreated(customerID string, m models.SnapshotCreationPoint) TotalSnapshotsCreated {
	return TotalSnapshotsCreated{
		Common:               NewCommon(TypeSnapshotsCreationTrend, customerID),
		UpdatedAt:            util.FormatWire(m.UpdatedAt),
		AggrWindowTimestamp:  util.FormatWire(m.AggrWindow),
		NumAdhocSnapshots:    m.Adhoc,
		NumPeriodicSnapshots: m.Periodic,
	}
}

// ActivityConverter returns a converter of volume or clone activity rows tagged with typ.
func ActivityConverter(typ, customerID string) func(models.VolumeActivity) Activity {
	return func(m models.VolumeActivity) Activity {
		trend := make([]ActivityTrendDetail, 0, len(m.Trend))
		for _, p := range m.Trend {
			trend = append(trend, ActivityTrendDetail{TimeStamp: util.FormatWire(p.Timestamp), IoActivity: p.IOActivity})
		}
		c := NewCommon(typ, customerID)
		c.Id = m.ID
		c.Name = m.Name
		return Activity{
			Common:              c,
			ProvisionType:       string(m.ProvisionType),
			TotalSizeInBytes:    m.TotalSizeBytes,
			UtilizedSizeInBytes: m.UtilizedSizeBytes,
			UtilizedPercentage:  m.UtilizedPercentage,
			CreatedAt:           util.FormatWire(m.CreatedAt),
			IoActivity:          m.IOActivity,
			System:              m.SystemName,
			SystemId:            m.SystemID,
			ActivityTrendInfo:   trend,
		}
	}
}

func IOActivityConverter(typ, customerID, id string) func(models.ActivityPoint) TotalIOActivity {
	return func(m models.ActivityPoint) TotalIOActivity {
		c := NewCommon(typ, customerID)
		c.Id = id
		return TotalIOActivity{
			Common:     c,
			TimeStamp:  util.FormatWire(m.Timestamp),
			IoActivity: m.IOActivity,
		}
	}
}

func NewSnapshotAge(customerID string, m models.AgeBucket) SnapshotAge {
	return SnapshotAge{
		Common:    NewCommon(TypeSnapshotsAgeTrend, customerID),
		Age:       m.Label,
		Bucket:    m.Bucket,
		SizeUnit:  m.SizeUnit,
		UpdatedAt: util.FormatWire(m.UpdatedAt),
		SizeInfo: []SnapshotSize{
			{NumSnapshots: m.SizeInfo.Min},
			{NumSnapshots: m.SizeInfo.Mid},
			{NumSnapshots: m.SizeInfo.Max},
		},
	}
}

func NewSnapshotRetention(customerID string, m models.RetentionBucket) SnapshotRetention {
	return SnapshotRetention{
		Common:               NewCommon(TypeSnapshotsRetention, customerID),
		Range:                m.Label,
		NumPeriodicSnapshots: m.Periodic,
		NumAdhocSnapshots:    m.Adhoc,
	}
}

func NewApplication(customerID string, m models.ApplicationSummary) Application {
	return Application{
		Common:       newResource(TypeApplication, customerID, m.ID, m.Name, "/applications/"+m.ID),
		NumVolumes:   m.NumVolumes,
		NumSnapshots: m.NumSnapshots,
		NumClones:    m.NumClones,
		System:       m.SystemName,
		SystemId:     m.SystemID,
	}
}

func NewApplicationVolume(customerID string, m models.ApplicationVolume) ApplicationVolume {
	return ApplicationVolume{
		Common:              newResource(TypeApplicationVolume, customerID, m.ID, m.Name, "/volumes/"+m.ID),
		NumSnapshots:        m.NumSnapshots,
		NumClones:           m.NumClones,
		UtilizedSizeInBytes: m.UtilizedSizeBytes,
		TotalSizeInBytes:    m.TotalSizeBytes,
		System:              m.SystemName,
		SystemId:            m.SystemID,
		Country:             m.Location.Country,
		State:               m.Location.State,
		City:                m.Location.City,
		PostalCode:          m.Location.PostalCode,
	}
}

func NewApplicationSnapshot(customerID string, m models.ApplicationSnapshot) ApplicationSnapshot {
	return ApplicationSnapshot{
		Common:           newResource(TypeApplicationSnapshot, customerID, m.ID, m.Name, "/snapshots/"+m.ID),
		TotalSizeInBytes: m.TotalSizeBytes,
		CreatedAt:        util.FormatWire(m.CreatedAt),
		ExpiresAt:        util.FormatWire(m.ExpiresAt),
		NumClones:        m.NumClones,
	}
}

func NewApplicationClone(customerID string, m models.ApplicationClone) ApplicationClone {
	return ApplicationClone{
		Common:              newResource(TypeApplicationClone, customerID, m.ID, m.Name, "/clones/"+m.ID),
		UtilizedSizeInBytes: m.UtilizedSizeBytes,
		TotalSizeInBytes:    m.TotalSizeBytes,
		CreatedAt:           util.FormatWire(m.CreatedAt),
		NumSnapshots:        m.NumSnapshots,
	}
}

func NewInventorySummary(m models.InventorySummary) InventorySummary {
	return InventorySummary{
		Common:              NewCommon(TypeInventorySummary, m.CustomerID),
		NumSystems:          m.NumSystems,
		UtilizedSizeInBytes: m.TotalUsedBytes,
		TotalSizeInBytes:    m.TotalUsableBytes,
		Cost:                m.Cost,
		Currency:            m.Currency,
	}
}

func NewVolumeUsage(customerID string, m models.VolumeFact) VolumeUsage {
	return VolumeUsage{
		Common:              newResource(TypeVolumeUsage, customerID, m.VolumeID, m.VolumeName, "/volumes/"+m.VolumeID),
		CreatedAt:           util.FormatWire(m.CreationTime),
		ProvisionType:       string(m.ProvisionType),
		UtilizedSizeInBytes: m.UsedBytes,
		TotalSizeInBytes:    m.SizeBytes,
	}
}

func NewSnapshotDetail(customerID string, m models.SnapshotDetail) SnapshotDetail {
	return SnapshotDetail{
		Common:    newResource(TypeSnapshot, customerID, m.ID, m.Name, "/snapshots/"+m.ID),
		System:    m.SystemName,
		SystemId:  m.SystemID,
		CreatedAt: util.FormatWire(m.CreatedAt),
		UpdatedAt: util.FormatWire(m.UpdatedAt),
	}
}

func newStorageArray(m models.ArrayDetail) StorageArray {
	return StorageArray{
		Name:                m.Name,
		Id:                  m.ID,
		Type:                string(m.DeviceType),
		Cost:                m.Cost,
		PurchaseCost:        m.PurchaseCost,
		Currency:            m.Currency,
		MonthsToDepreciate:  m.MonthsToDepreciate,
		BoughtAt:            util.FormatWire(m.BoughtAt),
		UtilizedSizeInBytes: m.UsedBytes,
		TotalSizeInBytes:    m.UsableBytes,
	}
}

func NewStorageSystem(customerID string, m models.SystemDetail) StorageSystem {
	var used float64
	if m.UsableBytes > 0 {
		used = util.Round(float64(m.UsedBytes) / float64(m.UsableBytes) * 100)
	}
	return StorageSystem{
		Common:              newResource(TypeStorageSystem, customerID, m.ID, m.Name, "/inventory-storage-systems/"+m.ID),
		NumArrays:           len(m.Arrays),
		PostalCode:          m.Location.PostalCode,
		City:                m.Location.City,
		State:               m.Location.State,
		Country:             m.Location.Country,
		UtilizedSizeInBytes: m.UsedBytes,
		TotalSizeInBytes:    m.UsableBytes,
		UtilizedPercentage:  used,
		Cost:                m.Cost,
		PurchaseCost:        m.PurchaseCost,
		Currency:            m.Currency,
		MonthsToDepreciate:  m.MonthsToDepreciate,
		BoughtAt:            util.FormatWire(m.BoughtAt),
		NumVolumes:          m.NumVolumes,
		NumSnapshots:        m.NumSnapshots,
		NumClones:           m.NumClones,
		ArrayInfo:           MapItems(m.Arrays, newStorageArray),
	}
}

// ProductInfoConverter returns a converter of the arrays of systemID. Arrays carry no
// serial number of their own, so the array id stands in for it.
func ProductInfoConverter(customerID, systemID string) func(models.ArrayDetail) ProductInfo {
	return func(m models.ArrayDetail) ProductInfo {
		return ProductInfo{
			Common:       newResource(TypeProductInfo, customerID, m.ID, m.Name, "/inventory-storage-systems/"+systemID+"/product-details"),
			SerialNumber: m.ID,
			DeviceType:   string(m.DeviceType),
		}
	}
}

// NewGeneratorStatus converts the status of the last generation run.
func NewGeneratorStatus(m models.GeneratorStatus) GeneratorStatus {
	s := GeneratorStatus{
		State:     GeneratorStatusState(m.State),
		Customers: m.Customers,
		Documents: m.Documents,
	}
	if s.Customers == nil {
		s.Customers = []string{}
	}
	if m.RunID != "" {
		s.RunId = &m.RunID
	}
	if m.OutputDir != "" {
		s.OutputDir = &m.OutputDir
	}
	if m.Error != nil {
		msg := m.Error.Error()
		s.Error = &msg
	}
	return s
}
