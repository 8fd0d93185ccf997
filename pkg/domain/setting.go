package domain

// SettingStalenessThreshold is the key of the site-wide staleness threshold in days
const SettingStalenessThreshold = "staleness_threshold"
