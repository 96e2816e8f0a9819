package body

import "math"

const deg = math.Pi / 180

// DefaultSunRadius is the sun radius of the classic profile.
const DefaultSunRadius = 2.5

// DefaultBodies returns a fresh copy of the built-in solar system: eight planets and their major moons.
// Each call returns new values so registries never share centers.
//
// Returns:
//   - []*Body: the planets in order of orbit distance
func DefaultBodies() []*Body {
	return []*Body{
		{
			Name: "Mercury", Radius: 0.38, OrbitDistance: 4, OrbitSpeed: 4.15, OrbitInclination: 7.0 * deg,
			Color: [3]float32{0.7, 0.7, 0.7},
			Info: Info{
				Radius: "2,439.7 km", AxialTilt: "0.034°", RotationPeriod: "58.6 Earth days",
				OrbitPeriod: "88 Earth days", DistanceFromSun: "57.9 million km", MoonCount: 0,
				Description: "The smallest planet in our solar system and nearest to the Sun.",
			},
		},
		{
			Name: "Venus", Radius: 0.95, OrbitDistance: 5.5, OrbitSpeed: 1.62, OrbitInclination: 3.39 * deg,
			Color: [3]float32{0.9, 0.7, 0.4},
			Info: Info{
				Radius: "6,051.8 km", AxialTilt: "177.4°", RotationPeriod: "243 Earth days",
				OrbitPeriod: "225 Earth days", DistanceFromSun: "108.2 million km", MoonCount: 0,
				Description: "Second planet from the Sun, known for its extreme temperatures and thick atmosphere.",
			},
		},
		{
			Name: "Earth", Radius: 1, OrbitDistance: 7, OrbitSpeed: 1.0,
			Color: [3]float32{0.2, 0.5, 1.0},
			Moons: []*Body{
				{Name: "Moon", Radius: 0.27, OrbitDistance: 1.5, OrbitSpeed: 2, OrbitInclination: 5.14 * deg, Color: [3]float32{0.8, 0.8, 0.8}},
			},
			Info: Info{
				Radius: "6,371 km", AxialTilt: "23.5°", RotationPeriod: "24 hours",
				OrbitPeriod: "365 days", DistanceFromSun: "150 million km", MoonCount: 1,
				Description: "Third planet from the Sun and the only known planet to harbor life.",
			},
		},
		{
			Name: "Mars", Radius: 0.53, OrbitDistance: 9, OrbitSpeed: 0.53, OrbitInclination: 1.85 * deg,
			Color: [3]float32{1.0, 0.3, 0.2},
			Moons: []*Body{
				{Name: "Phobos", Radius: 0.14, OrbitDistance: 0.8, OrbitSpeed: 3, Color: [3]float32{0.6, 0.6, 0.6}},
				{Name: "Deimos", Radius: 0.08, OrbitDistance: 1.1, OrbitSpeed: 2.5, Color: [3]float32{0.7, 0.7, 0.7}},
			},
			Info: Info{
				Radius: "3,389.5 km", AxialTilt: "25.19°", RotationPeriod: "1.03 Earth days",
				OrbitPeriod: "687 Earth days", DistanceFromSun: "227.9 million km", MoonCount: 2,
				Description: "Known as the Red Planet, famous for its reddish appearance and potential for human colonization.",
			},
		},
		{
			Name: "Jupiter", Radius: 2.2, OrbitDistance: 13, OrbitSpeed: 0.08, OrbitInclination: 1.3 * deg,
			Color: [3]float32{0.9, 0.7, 0.5},
			Info: Info{
				Radius: "69,911 km", AxialTilt: "3.13°", RotationPeriod: "9.9 hours",
				OrbitPeriod: "12 Earth years", DistanceFromSun: "778.5 million km", MoonCount: 95,
				Description: "The largest planet in our solar system, known for its Great Red Spot.",
			},
		},
		{
			Name: "Saturn", Radius: 1.9, OrbitDistance: 17, OrbitSpeed: 0.03, OrbitInclination: 2.49 * deg,
			Color: [3]float32{0.9, 0.8, 0.6},
			Info: Info{
				Radius: "58,232 km", AxialTilt: "26.73°", RotationPeriod: "10.7 hours",
				OrbitPeriod: "29.5 Earth years", DistanceFromSun: "1.4 billion km", MoonCount: 146,
				Description: "Distinguished by its extensive ring system, the second-largest planet in our solar system.",
			},
		},
		{
			Name: "Uranus", Radius: 1.0, OrbitDistance: 21, OrbitSpeed: 0.01, OrbitInclination: 0.77 * deg,
			Color: [3]float32{0.5, 0.8, 0.9},
			Info: Info{
				Radius: "25,362 km", AxialTilt: "97.77°", RotationPeriod: "17.2 hours",
				OrbitPeriod: "84 Earth years", DistanceFromSun: "2.87 billion km", MoonCount: 27,
				Description: "Known for its tilted axis and faint rings.",
			},
		},
		{
			Name: "Neptune", Radius: 0.98, OrbitDistance: 25, OrbitSpeed: 0.006, OrbitInclination: 1.77 * deg,
			Color: [3]float32{0.3, 0.4, 0.9},
			Info: Info{
				Radius: "24,622 km", AxialTilt: "28.32°", RotationPeriod: "16.1 hours",
				OrbitPeriod: "165 Earth years", DistanceFromSun: "4.5 billion km", MoonCount: 14,
				Description: "The farthest planet from the Sun, known for strong winds and deep blue color.",
			},
		},
	}
}
