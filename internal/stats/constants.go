package stats

import "time"

// WarrantyExpiryWindow is how far ahead a warranty counts as expiring soon
const WarrantyExpiryWindow = 30 * 24 * time.Hour

// RecentItemsLimit is the number of recently purchased items on the dashboard
const RecentItemsLimit = 5

// LogMsgDashboardComputed is logged at debug level for every dashboard request
const LogMsgDashboardComputed = "Dashboard computed"
