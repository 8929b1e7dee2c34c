package geo

// DefaultGazetteer returns the curated table of major cities the engine
// ships with. It is deliberately small and hand-maintained: not a general
// geocoder, just enough coverage for buyer and vendor location text to
// resolve in the common case. Where two cities share a name, the entry
// listed first wins the bare-city tier, so US cities come before their
// overseas namesakes and larger cities before smaller ones.
func DefaultGazetteer() *Gazetteer {
	return NewGazetteer(defaultEntries)
}

var defaultEntries = []Entry{
	// United States
	{"New York", "NY", Coordinate{40.7128, -74.0060}},
	{"Los Angeles", "CA", Coordinate{34.0522, -118.2437}},
	{"Chicago", "IL", Coordinate{41.8781, -87.6298}},
	{"Houston", "TX", Coordinate{29.7604, -95.3698}},
	{"Phoenix", "AZ", Coordinate{33.4484, -112.0740}},
	{"Philadelphia", "PA", Coordinate{39.9526, -75.1652}},
	{"San Antonio", "TX", Coordinate{29.4241, -98.4936}},
	{"San Diego", "CA", Coordinate{32.7157, -117.1611}},
	{"Dallas", "TX", Coordinate{32.7767, -96.7970}},
	{"San Jose", "CA", Coordinate{37.3382, -121.8863}},
	{"Austin", "TX", Coordinate{30.2672, -97.7431}},
	{"Jacksonville", "FL", Coordinate{30.3322, -81.6557}},
	{"Fort Worth", "TX", Coordinate{32.7555, -97.3308}},
	{"Columbus", "OH", Coordinate{39.9612, -82.9988}},
	{"Columbus", "GA", Coordinate{32.4610, -84.9877}},
	{"Charlotte", "NC", Coordinate{35.2271, -80.8431}},
	{"San Francisco", "CA", Coordinate{37.7749, -122.4194}},
	{"Indianapolis", "IN", Coordinate{39.7684, -86.1581}},
	{"Seattle", "WA", Coordinate{47.6062, -122.3321}},
	{"Denver", "CO", Coordinate{39.7392, -104.9903}},
	{"Washington", "DC", Coordinate{38.9072, -77.0369}},
	{"Boston", "MA", Coordinate{42.3601, -71.0589}},
	{"El Paso", "TX", Coordinate{31.7619, -106.4850}},
	{"Nashville", "TN", Coordinate{36.1627, -86.7816}},
	{"Detroit", "MI", Coordinate{42.3314, -83.0458}},
	{"Oklahoma City", "OK", Coordinate{35.4676, -97.5164}},
	{"Portland", "OR", Coordinate{45.5152, -122.6784}},
	{"Portland", "ME", Coordinate{43.6591, -70.2568}},
	{"Las Vegas", "NV", Coordinate{36.1699, -115.1398}},
	{"Memphis", "TN", Coordinate{35.1495, -90.0490}},
	{"Louisville", "KY", Coordinate{38.2527, -85.7585}},
	{"Baltimore", "MD", Coordinate{39.2904, -76.6122}},
	{"Milwaukee", "WI", Coordinate{43.0389, -87.9065}},
	{"Albuquerque", "NM", Coordinate{35.0844, -106.6504}},
	{"Tucson", "AZ", Coordinate{32.2226, -110.9747}},
	{"Fresno", "CA", Coordinate{36.7378, -119.7871}},
	{"Sacramento", "CA", Coordinate{38.5816, -121.4944}},
	{"Mesa", "AZ", Coordinate{33.4152, -111.8315}},
	{"Kansas City", "MO", Coordinate{39.0997, -94.5786}},
	{"Kansas City", "KS", Coordinate{39.1141, -94.6275}},
	{"Atlanta", "GA", Coordinate{33.7490, -84.3880}},
	{"Omaha", "NE", Coordinate{41.2565, -95.9345}},
	{"Colorado Springs", "CO", Coordinate{38.8339, -104.8214}},
	{"Raleigh", "NC", Coordinate{35.7796, -78.6382}},
	{"Miami", "FL", Coordinate{25.7617, -80.1918}},
	{"Long Beach", "CA", Coordinate{33.7701, -118.1937}},
	{"Virginia Beach", "VA", Coordinate{36.8529, -75.9780}},
	{"Oakland", "CA", Coordinate{37.8044, -122.2712}},
	{"Minneapolis", "MN", Coordinate{44.9778, -93.2650}},
	{"Tulsa", "OK", Coordinate{36.1540, -95.9928}},
	{"Tampa", "FL", Coordinate{27.9506, -82.4572}},
	{"Arlington", "TX", Coordinate{32.7357, -97.1081}},
	{"Arlington", "VA", Coordinate{38.8816, -77.0910}},
	{"New Orleans", "LA", Coordinate{29.9511, -90.0715}},
	{"Wichita", "KS", Coordinate{37.6872, -97.3301}},
	{"Cleveland", "OH", Coordinate{41.4993, -81.6944}},
	{"Bakersfield", "CA", Coordinate{35.3733, -119.0187}},
	{"Aurora", "CO", Coordinate{39.7294, -104.8319}},
	{"Aurora", "IL", Coordinate{41.7606, -88.3201}},
	{"Anaheim", "CA", Coordinate{33.8366, -117.9143}},
	{"Honolulu", "HI", Coordinate{21.3069, -157.8583}},
	{"Santa Ana", "CA", Coordinate{33.7455, -117.8677}},
	{"Riverside", "CA", Coordinate{33.9533, -117.3962}},
	{"Corpus Christi", "TX", Coordinate{27.8006, -97.3964}},
	{"Lexington", "KY", Coordinate{38.0406, -84.5037}},
	{"Stockton", "CA", Coordinate{37.9577, -121.2908}},
	{"St. Louis", "MO", Coordinate{38.6270, -90.1994}},
	{"Saint Paul", "MN", Coordinate{44.9537, -93.0900}},
	{"Cincinnati", "OH", Coordinate{39.1031, -84.5120}},
	{"Pittsburgh", "PA", Coordinate{40.4406, -79.9959}},
	{"Anchorage", "AK", Coordinate{61.2181, -149.9003}},
	{"Greensboro", "NC", Coordinate{36.0726, -79.7920}},
	{"Plano", "TX", Coordinate{33.0198, -96.6989}},
	{"Newark", "NJ", Coordinate{40.7357, -74.1724}},
	{"Lincoln", "NE", Coordinate{40.8136, -96.7026}},
	{"Orlando", "FL", Coordinate{28.5383, -81.3792}},
	{"Irvine", "CA", Coordinate{33.6846, -117.8265}},
	{"Toledo", "OH", Coordinate{41.6528, -83.5379}},
	{"Jersey City", "NJ", Coordinate{40.7178, -74.0431}},
	{"Chula Vista", "CA", Coordinate{32.6401, -117.0842}},
	{"Durham", "NC", Coordinate{35.9940, -78.8986}},
	{"Fort Wayne", "IN", Coordinate{41.0793, -85.1394}},
	{"St. Petersburg", "FL", Coordinate{27.7676, -82.6403}},
	{"Laredo", "TX", Coordinate{27.5306, -99.4803}},
	{"Buffalo", "NY", Coordinate{42.8864, -78.8784}},
	{"Madison", "WI", Coordinate{43.0731, -89.4012}},
	{"Lubbock", "TX", Coordinate{33.5779, -101.8552}},
	{"Chandler", "AZ", Coordinate{33.3062, -111.8413}},
	{"Scottsdale", "AZ", Coordinate{33.4942, -111.9261}},
	{"Reno", "NV", Coordinate{39.5296, -119.8138}},
	{"Glendale", "AZ", Coordinate{33.5387, -112.1860}},
	{"Glendale", "CA", Coordinate{34.1425, -118.2551}},
	{"Norfolk", "VA", Coordinate{36.8508, -76.2859}},
	{"Winston-Salem", "NC", Coordinate{36.0999, -80.2442}},
	{"Irving", "TX", Coordinate{32.8140, -96.9489}},
	{"Chesapeake", "VA", Coordinate{36.7682, -76.2875}},
	{"Garland", "TX", Coordinate{32.9126, -96.6389}},
	{"Boise", "ID", Coordinate{43.6150, -116.2023}},
	{"Baton Rouge", "LA", Coordinate{30.4515, -91.1871}},
	{"Spokane", "WA", Coordinate{47.6588, -117.4260}},
	{"Richmond", "VA", Coordinate{37.5407, -77.4360}},
	{"Richmond", "CA", Coordinate{37.9358, -122.3477}},
	{"Tacoma", "WA", Coordinate{47.2529, -122.4443}},
	{"Des Moines", "IA", Coordinate{41.5868, -93.6250}},
	{"San Bernardino", "CA", Coordinate{34.1083, -117.2898}},
	{"Modesto", "CA", Coordinate{37.6391, -120.9969}},
	{"Fontana", "CA", Coordinate{34.0922, -117.4350}},
	{"Birmingham", "AL", Coordinate{33.5186, -86.8104}},
	{"Rochester", "NY", Coordinate{43.1566, -77.6088}},
	{"Rochester", "MN", Coordinate{44.0121, -92.4802}},
	{"Salt Lake City", "UT", Coordinate{40.7608, -111.8910}},
	{"Grand Rapids", "MI", Coordinate{42.9634, -85.6681}},
	{"Huntsville", "AL", Coordinate{34.7304, -86.5861}},
	{"Providence", "RI", Coordinate{41.8240, -71.4128}},
	{"Knoxville", "TN", Coordinate{35.9606, -83.9207}},
	{"Worcester", "MA", Coordinate{42.2626, -71.8023}},
	{"Chattanooga", "TN", Coordinate{35.0456, -85.3097}},
	{"Fayetteville", "NC", Coordinate{35.0527, -78.8784}},
	{"Fayetteville", "AR", Coordinate{36.0626, -94.1574}},
	{"Jackson", "MS", Coordinate{32.2988, -90.1848}},
	{"Springfield", "MO", Coordinate{37.2090, -93.2923}},
	{"Springfield", "IL", Coordinate{39.7817, -89.6501}},
	{"Springfield", "MA", Coordinate{42.1015, -72.5898}},
	{"Albany", "NY", Coordinate{42.6526, -73.7562}},
	{"Charleston", "SC", Coordinate{32.7765, -79.9311}},
	{"Charleston", "WV", Coordinate{38.3498, -81.6326}},
	{"Columbia", "SC", Coordinate{34.0007, -81.0348}},
	{"Columbia", "MO", Coordinate{38.9517, -92.3341}},
	{"Savannah", "GA", Coordinate{32.0809, -81.0912}},
	{"Salem", "OR", Coordinate{44.9429, -123.0351}},
	{"Eugene", "OR", Coordinate{44.0521, -123.0868}},
	{"Santa Fe", "NM", Coordinate{35.6870, -105.9378}},
	{"Fort Lauderdale", "FL", Coordinate{26.1224, -80.1373}},
	{"Hartford", "CT", Coordinate{41.7658, -72.6734}},
	{"Burlington", "VT", Coordinate{44.4759, -73.2121}},
	{"Billings", "MT", Coordinate{45.7833, -108.5007}},
	{"Sioux Falls", "SD", Coordinate{43.5446, -96.7311}},
	{"Fargo", "ND", Coordinate{46.8772, -96.7898}},
	{"Cheyenne", "WY", Coordinate{41.1400, -104.8202}},

	// Canada
	{"Toronto", "CA", Coordinate{43.6532, -79.3832}},
	{"Montreal", "CA", Coordinate{45.5017, -73.5673}},
	{"Vancouver", "CA", Coordinate{49.2827, -123.1207}},
	{"Calgary", "CA", Coordinate{51.0447, -114.0719}},
	{"Ottawa", "CA", Coordinate{45.4215, -75.6972}},
	{"Edmonton", "CA", Coordinate{53.5461, -113.4938}},
	{"Winnipeg", "CA", Coordinate{49.8951, -97.1384}},
	{"Quebec City", "CA", Coordinate{46.8139, -71.2080}},
	{"Halifax", "CA", Coordinate{44.6488, -63.5752}},

	// Europe
	{"London", "GB", Coordinate{51.5074, -0.1278}},
	{"Birmingham", "GB", Coordinate{52.4862, -1.8904}},
	{"Manchester", "GB", Coordinate{53.4808, -2.2426}},
	{"Glasgow", "GB", Coordinate{55.8642, -4.2518}},
	{"Edinburgh", "GB", Coordinate{55.9533, -3.1883}},
	{"Dublin", "IE", Coordinate{53.3498, -6.2603}},
	{"Paris", "FR", Coordinate{48.8566, 2.3522}},
	{"Lyon", "FR", Coordinate{45.7640, 4.8357}},
	{"Marseille", "FR", Coordinate{43.2965, 5.3698}},
	{"Berlin", "DE", Coordinate{52.5200, 13.4050}},
	{"Munich", "DE", Coordinate{48.1351, 11.5820}},
	{"Hamburg", "DE", Coordinate{53.5511, 9.9937}},
	{"Frankfurt", "DE", Coordinate{50.1109, 8.6821}},
	{"Cologne", "DE", Coordinate{50.9375, 6.9603}},
	{"Madrid", "ES", Coordinate{40.4168, -3.7038}},
	{"Barcelona", "ES", Coordinate{41.3851, 2.1734}},
	{"Lisbon", "PT", Coordinate{38.7223, -9.1393}},
	{"Rome", "IT", Coordinate{41.9028, 12.4964}},
	{"Milan", "IT", Coordinate{45.4642, 9.1900}},
	{"Amsterdam", "NL", Coordinate{52.3676, 4.9041}},
	{"Brussels", "BE", Coordinate{50.8503, 4.3517}},
	{"Vienna", "AT", Coordinate{48.2082, 16.3738}},
	{"Zurich", "CH", Coordinate{47.3769, 8.5417}},
	{"Geneva", "CH", Coordinate{46.2044, 6.1432}},
	{"Copenhagen", "DK", Coordinate{55.6761, 12.5683}},
	{"Stockholm", "SE", Coordinate{59.3293, 18.0686}},
	{"Oslo", "NO", Coordinate{59.9139, 10.7522}},
	{"Helsinki", "FI", Coordinate{60.1699, 24.9384}},
	{"Warsaw", "PL", Coordinate{52.2297, 21.0122}},
	{"Prague", "CZ", Coordinate{50.0755, 14.4378}},
	{"Budapest", "HU", Coordinate{47.4979, 19.0402}},
	{"Athens", "GR", Coordinate{37.9838, 23.7275}},
	{"Istanbul", "TR", Coordinate{41.0082, 28.9784}},

	// Asia-Pacific
	{"Tokyo", "JP", Coordinate{35.6762, 139.6503}},
	{"Osaka", "JP", Coordinate{34.6937, 135.5023}},
	{"Seoul", "KR", Coordinate{37.5665, 126.9780}},
	{"Beijing", "CN", Coordinate{39.9042, 116.4074}},
	{"Shanghai", "CN", Coordinate{31.2304, 121.4737}},
	{"Hong Kong", "HK", Coordinate{22.3193, 114.1694}},
	{"Singapore", "SG", Coordinate{1.3521, 103.8198}},
	{"Bangkok", "TH", Coordinate{13.7563, 100.5018}},
	{"Mumbai", "IN", Coordinate{19.0760, 72.8777}},
	{"Delhi", "IN", Coordinate{28.7041, 77.1025}},
	{"Bangalore", "IN", Coordinate{12.9716, 77.5946}},
	{"Jakarta", "ID", Coordinate{-6.2088, 106.8456}},
	{"Manila", "PH", Coordinate{14.5995, 120.9842}},
	{"Sydney", "AU", Coordinate{-33.8688, 151.2093}},
	{"Melbourne", "AU", Coordinate{-37.8136, 144.9631}},
	{"Brisbane", "AU", Coordinate{-27.4698, 153.0251}},
	{"Perth", "AU", Coordinate{-31.9505, 115.8605}},
	{"Auckland", "NZ", Coordinate{-36.8485, 174.7633}},

	// Latin America, Middle East, Africa
	{"Mexico City", "MX", Coordinate{19.4326, -99.1332}},
	{"Guadalajara", "MX", Coordinate{20.6597, -103.3496}},
	{"Monterrey", "MX", Coordinate{25.6866, -100.3161}},
	{"Sao Paulo", "BR", Coordinate{-23.5505, -46.6333}},
	{"Rio de Janeiro", "BR", Coordinate{-22.9068, -43.1729}},
	{"Buenos Aires", "AR", Coordinate{-34.6037, -58.3816}},
	{"Santiago", "CL", Coordinate{-33.4489, -70.6693}},
	{"Bogota", "CO", Coordinate{4.7110, -74.0721}},
	{"Lima", "PE", Coordinate{-12.0464, -77.0428}},
	{"Dubai", "AE", Coordinate{25.2048, 55.2708}},
	{"Tel Aviv", "IL", Coordinate{32.0853, 34.7818}},
	{"Cairo", "EG", Coordinate{30.0444, 31.2357}},
	{"Lagos", "NG", Coordinate{6.5244, 3.3792}},
	{"Nairobi", "KE", Coordinate{-1.2921, 36.8219}},
	{"Johannesburg", "ZA", Coordinate{-26.2041, 28.0473}},
	{"Cape Town", "ZA", Coordinate{-33.9249, 18.4241}},
}
