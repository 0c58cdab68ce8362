package schema

// Table specs for the Gauteng mobility datasets. Registration order is
// load order: roads and the logistics parents come before the tables
// that reference them.

func init() {
	registerRoads()
	registerTruckProfiles()
	registerDeliveries()
	registerAssignments()
	registerHistoricalSpeeds()
	registerIncidents()
	registerWeather()
}

func registerRoads() {
	Register(TableSpec{
		Name: "roads",
		File: "roads.csv",
		Columns: []string{
			"segment_id",
			"road_id",
			"from_lat",
			"from_lon",
			"to_lat",
			"to_lon",
			"length_m",
			"road_type",
			"lanes",
			"speed_limit_kph",
			"oneway",
			"municipality",
			"province",
		},
		// Header spellings seen across the source datasets.
		Aliases: map[string]string{
			"segment":        "segment_id",
			"segmentid":      "segment_id",
			"seg_id":         "segment_id",
			"road":           "road_id",
			"roadid":         "road_id",
			"road_name":      Drop,
			"name":           Drop,
			"from_latitude":  "from_lat",
			"from_longitude": "from_lon",
			"to_latitude":    "to_lat",
			"to_longitude":   "to_lon",
			"length_meters":  "length_m",
			"length":         "length_m",
			"speed_limit":    "speed_limit_kph",
			"one_way":        "oneway",
			"city":           "municipality",
			"muni":           "municipality",
			"state":          "province",
			"prov":           "province",
		},
		Casts: map[string]string{
			"from_lat":        "CAST({col} AS NUMERIC(9,6))",
			"from_lon":        "CAST({col} AS NUMERIC(9,6))",
			"to_lat":          "CAST({col} AS NUMERIC(9,6))",
			"to_lon":          "CAST({col} AS NUMERIC(9,6))",
			"length_m":        "NULLIF({col}, '')::NUMERIC(10,1)",
			"lanes":           "NULLIF({col}, '')::INT",
			"speed_limit_kph": "NULLIF({col}, '')::INT",
			"oneway":          "NULLIF({col}, '')::INT",
			"road_type":       "{schema}.road_enum({col})",
		},
		KeyColumns: []string{"segment_id"},
		Upsert:     true,
	})
}

func registerTruckProfiles() {
	Register(TableSpec{
		Name:    "truck_profiles",
		File:    "truck_profiles.csv",
		Columns: []string{"truck_id", "max_weight_tons", "height_m", "width_m", "hazmat"},
		Casts: map[string]string{
			"max_weight_tons": "NULLIF({col}, '')::NUMERIC(6,2)",
			"height_m":        "NULLIF({col}, '')::NUMERIC(5,2)",
			"width_m":         "NULLIF({col}, '')::NUMERIC(5,2)",
			"hazmat":          "NULLIF({col}, '')::INT",
		},
		KeyColumns: []string{"truck_id"},
		Upsert:     true,
	})
}

func registerDeliveries() {
	Register(TableSpec{
		Name: "deliveries",
		File: "deliveries.csv",
		Columns: []string{
			"delivery_id",
			"truck_id",
			"scheduled_departure_utc",
			"scheduled_arrival_utc",
			"origin_name",
			"origin_lat",
			"origin_lon",
			"destination_name",
			"destination_lat",
			"destination_lon",
			"priority",
			"commodity",
			"per_km_cost_rand",
			"per_hour_cost_rand",
		},
		Casts: map[string]string{
			"scheduled_departure_utc": "NULLIF({col}, '')::TIMESTAMPTZ",
			"scheduled_arrival_utc":   "NULLIF({col}, '')::TIMESTAMPTZ",
			"origin_lat":              "NULLIF({col}, '')::NUMERIC(9,6)",
			"origin_lon":              "NULLIF({col}, '')::NUMERIC(9,6)",
			"destination_lat":         "NULLIF({col}, '')::NUMERIC(9,6)",
			"destination_lon":         "NULLIF({col}, '')::NUMERIC(9,6)",
			"priority":                "{schema}.priority_enum({col})",
			"per_km_cost_rand":        "NULLIF({col}, '')::NUMERIC(10,2)",
			"per_hour_cost_rand":      "NULLIF({col}, '')::NUMERIC(10,2)",
		},
		KeyColumns: []string{"delivery_id"},
		Upsert:     true,
	})
}

func registerAssignments() {
	Register(TableSpec{
		Name: "assignments",
		File: "assignments.csv",
		Columns: []string{
			"assignment_id",
			"delivery_id",
			"planned_departure_utc",
			"planned_arrival_utc",
			"planned_distance_km",
			"planned_duration_min",
			"route_segments",
			"status",
			"reason",
		},
		Casts: map[string]string{
			"planned_departure_utc": "NULLIF({col}, '')::TIMESTAMPTZ",
			"planned_arrival_utc":   "NULLIF({col}, '')::TIMESTAMPTZ",
			"planned_distance_km":   "NULLIF({col}, '')::NUMERIC(8,1)",
			"planned_duration_min":  "NULLIF({col}, '')::INT",
			"route_segments":        "NULLIF({col}, '')::JSONB",
			"status":                "{schema}.assign_status_enum({col})",
		},
		JSONColumns: []string{"route_segments"},
		KeyColumns:  []string{"assignment_id"},
		Upsert:      true,
	})
}

func registerHistoricalSpeeds() {
	Register(TableSpec{
		Name: "historical_speeds",
		File: "historical_speeds.csv",
		Columns: []string{
			"segment_id",
			"timestamp",
			"avg_speed_kph",
			"pct_freeflow",
			"vehicle_count",
			"interval_minutes",
			"source",
		},
		Casts: map[string]string{
			"timestamp":        "CAST({col} AS TIMESTAMPTZ)",
			"avg_speed_kph":    "NULLIF({col}, '')::NUMERIC(6,1)",
			"pct_freeflow":     "NULLIF({col}, '')::NUMERIC(5,3)",
			"vehicle_count":    "NULLIF({col}, '')::INT",
			"interval_minutes": "NULLIF({col}, '')::INT",
		},
		KeyColumns: []string{"segment_id", "timestamp"},
		Upsert:     true,
	})
}

func registerIncidents() {
	Register(TableSpec{
		Name: "incidents",
		File: "incidents.csv",
		Columns: []string{
			"incident_id",
			"timestamp",
			"type",
			"severity",
			"lat",
			"lon",
			"affected_segment_id",
			"description",
			"source",
		},
		Casts: map[string]string{
			"timestamp": "CAST({col} AS TIMESTAMPTZ)",
			"type":      "{schema}.incident_enum({col})",
			"severity":  "NULLIF({col}, '')::INT",
			"lat":       "NULLIF({col}, '')::NUMERIC(9,6)",
			"lon":       "NULLIF({col}, '')::NUMERIC(9,6)",
		},
		KeyColumns: []string{"incident_id"},
		Upsert:     true,
	})
}

func registerWeather() {
	Register(TableSpec{
		Name: "weather",
		File: "weather.csv",
		Columns: []string{
			"station_id",
			"timestamp",
			"lat",
			"lon",
			"temperature_c",
			"precip_mm_h",
			"wind_kph",
			"visibility_km",
			"wx_condition",
			"nearest_segment_id",
		},
		Casts: map[string]string{
			"timestamp":     "CAST({col} AS TIMESTAMPTZ)",
			"lat":           "CAST({col} AS NUMERIC(9,6))",
			"lon":           "CAST({col} AS NUMERIC(9,6))",
			"temperature_c": "NULLIF({col}, '')::NUMERIC(5,2)",
			"precip_mm_h":   "NULLIF({col}, '')::NUMERIC(6,2)",
			"wind_kph":      "NULLIF({col}, '')::NUMERIC(6,2)",
			"visibility_km": "NULLIF({col}, '')::NUMERIC(6,2)",
			"wx_condition":  "{schema}.wx_enum({col})",
		},
		KeyColumns: []string{"station_id", "timestamp"},
		Upsert:     true,
	})
}
