package domain

// Ad types accepted on the Ads sheet.
const (
	AdTypeStandard            = "AD_SERVING_STANDARD_AD"
	AdTypeTracking            = "AD_SERVING_TRACKING"
	AdTypeClickTracker        = "AD_SERVING_CLICK_TRACKER"
	AdTypeClickTrackerDynamic = "AD_SERVING_CLICK_TRACKER_DYNAMIC"
)

// ClickThroughURL selects either the default landing page or a custom URL.
type ClickThroughURL struct {
	DefaultLandingPage    bool
	CustomClickThroughURL string
}

// DeliverySchedule holds the rotation weight and priority of an ad.
type DeliverySchedule struct {
	ImpressionRatio int64
	Priority        string
}

// PlacementAssignment links an ad to a placement.
type PlacementAssignment struct {
	PlacementID int64
	Active      bool
}

// CreativeAssignment links an ad to a creative.
type CreativeAssignment struct {
	CreativeID      int64
	Active          bool
	SSLCompliant    bool
	Sequence        int64
	ClickThroughURL *ClickThroughURL
}

// CreativeRotation holds the creatives an ad rotates through.
type CreativeRotation struct {
	CreativeAssignments []CreativeAssignment
}

// Ad is an ad resource. Start and end times are UTC timestamps in
// yyyy-MM-ddTHH:mm:ss.SSSZ form.
type Ad struct {
	ID                   int64
	Kind                 string
	CampaignID           int64
	Name                 string
	StartTime            string
	EndTime              string
	Type                 string
	Active               bool
	DynamicClickTracker  bool
	DeliverySchedule     DeliverySchedule
	ClickThroughURL      *ClickThroughURL
	PlacementAssignments []PlacementAssignment
	CreativeRotation     *CreativeRotation

	// Remote is the resource as last read from the service. Adapters keep
	// it so that an update does not drop fields this package does not model.
	Remote any
}
