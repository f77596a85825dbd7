package service

import "maps"

var bestTimeSchedule = map[string]string{
	"Monday":    "11:00 AM – 1:00 PM",
	"Tuesday":   "10:00 AM – 12:00 PM",
	"Wednesday": "11:00 AM – 2:00 PM",
	"Thursday":  "10:00 AM – 12:00 PM & 7:00 PM – 9:00 PM",
	"Friday":    "9:00 AM – 11:00 AM & 6:00 PM – 8:00 PM",
	"Saturday":  "10:00 AM – 12:00 PM",
	"Sunday":    "9:00 AM – 11:00 AM",
}

var postingWindows = []string{
	"9:00 AM - 11:00 AM",
	"12:00 PM - 1:00 PM",
	"7:00 PM - 9:00 PM",
	"10:00 AM - 12:00 PM",
	"6:00 PM - 8:00 PM",
}

var engagementPredictions = []string{
	"High (85-95%)",
	"Very High (90-98%)",
	"Excellent (95%+)",
	"Good (75-85%)",
	"Strong (80-90%)",
}

func schedule() map[string]string {
	return maps.Clone(bestTimeSchedule)
}
