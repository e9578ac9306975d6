// internal/service/spot/seed.go

package spot

import (
	"time"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/spot"
)

// SeedSpots returns the community's starting collection of hidden spots
// around Gwalior. It stands in for the external spot feed.
func SeedSpots() []spot.Spot {
	return []spot.Spot{
		{
			ID:          "1",
			Name:        "Sunset Point at Gwalior Fort",
			Description: "A secluded corner of the ancient fort where golden hour paints the entire city below in warm hues. Perfect for intimate conversations and peaceful reflection.",
			Story:       "I discovered this spot during my college days when I was feeling overwhelmed with studies. As the sun set behind the Sasbahu temples, I realized that some of life's most beautiful moments happen when we least expect them. The way the light dances on the sandstone walls at sunset is pure magic.",
			Vibe:        spot.VibeSerene,
			Ratings:     spot.Ratings{Uniqueness: 5, Vibe: 5, Safety: 4, CrowdLevel: 2},
			Location: spot.Location{
				Coordinate: geo.Coordinate{Lat: 26.2295, Lng: 78.1691},
				Address:    "Gwalior Fort, Near Sasbahu Temple, Gwalior",
			},
			Images:      []string{"https://images.unsplash.com/photo-1426604966848-d7adac402bff?w=800&h=600&fit=crop"},
			Author:      "Priya M.",
			Experiences: 23,
			CreatedAt:   time.Date(2024, 3, 15, 16, 30, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "The Secret Garden Café Corner",
			Description: "A hidden courtyard behind Gwalior's old market where a tiny café serves the best masala chai. Surrounded by flowering vines and old-world charm.",
			Story:       "My grandmother used to bring me here when I was seven. The owner, Sharma Uncle, still remembers my favorite seat - the corner table under the jasmine vine. When I brought my partner here for our first anniversary, Sharma Uncle winked and said 'This corner has seen many love stories bloom.'",
			Vibe:        spot.VibeRomantic,
			Ratings:     spot.Ratings{Uniqueness: 4, Vibe: 5, Safety: 5, CrowdLevel: 1},
			Location: spot.Location{
				Coordinate: geo.Coordinate{Lat: 26.2144, Lng: 78.1869},
				Address:    "Behind Sarafa Bazaar, Old Gwalior City",
			},
			Images:      []string{"https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=800&h=600&fit=crop"},
			Author:      "Arjun K.",
			Experiences: 31,
			CreatedAt:   time.Date(2024, 3, 10, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Name:        "Tighra Dam Artist's Retreat",
			Description: "A quiet spot by the water where local artists gather to paint and create. The reflection of clouds in the still water provides endless inspiration.",
			Story:       "As an art student, I was struggling to find my style until I stumbled upon this corner of Tighra Dam. Every Sunday, a small group of artists gather here with their easels and sketchpads. The first time I painted the water lilies at dawn, with mist rising from the lake, I finally understood what it meant to capture a moment.",
			Vibe:        spot.VibeCreative,
			Ratings:     spot.Ratings{Uniqueness: 4, Vibe: 4, Safety: 4, CrowdLevel: 2},
			Location: spot.Location{
				Coordinate: geo.Coordinate{Lat: 26.1876, Lng: 78.1432},
				Address:    "Tighra Dam, Near Boat Club, Gwalior",
			},
			Images:      []string{"https://images.unsplash.com/photo-1433086966358-54859d0ed716?w=800&h=600&fit=crop"},
			Author:      "Meera S.",
			Experiences: 18,
			CreatedAt:   time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Name:        "Phool Bagh Hidden Grove",
			Description: "A secluded grove within the public garden where ancient trees create a natural canopy. Perfect for meditation, reading, or quiet dates away from city noise.",
			Story:       "After my father passed away, I couldn't find peace anywhere. A friend suggested this quiet corner of Phool Bagh where old banyan trees create a natural sanctuary. The first time I sat here with his favorite book, I felt his presence in the rustling leaves.",
			Vibe:        spot.VibeSerene,
			Ratings:     spot.Ratings{Uniqueness: 3, Vibe: 5, Safety: 5, CrowdLevel: 1},
			Location: spot.Location{
				Coordinate: geo.Coordinate{Lat: 26.2089, Lng: 78.1711},
				Address:    "Phool Bagh Garden, Behind Rose Section, Gwalior",
			},
			Images:      []string{"https://images.unsplash.com/photo-1472396961693-142e6e269027?w=800&h=600&fit=crop"},
			Author:      "Rahul T.",
			Experiences: 27,
			CreatedAt:   time.Date(2024, 2, 28, 11, 45, 0, 0, time.UTC),
		},
		{
			ID:          "5",
			Name:        "Jai Vilas Palace Secret Balcony",
			Description: "A forgotten balcony overlooking the manicured gardens of Jai Vilas Palace. Royal architecture meets intimate storytelling in this hidden gem.",
			Story:       "During a heritage walk, our guide mentioned this overlooked balcony. I returned alone the next evening and watched peacocks dance in the gardens below. The ornate carved pillars and the golden light filtering through old windows made me feel like I was living in a fairy tale.",
			Vibe:        spot.VibeRomantic,
			Ratings:     spot.Ratings{Uniqueness: 5, Vibe: 4, Safety: 3, CrowdLevel: 1},
			Location: spot.Location{
				Coordinate: geo.Coordinate{Lat: 26.2158, Lng: 78.1768},
				Address:    "Jai Vilas Palace Complex, Gwalior",
			},
			Images:      []string{"https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=800&h=600&fit=crop"},
			Author:      "Kavya R.",
			Experiences: 15,
			CreatedAt:   time.Date(2024, 2, 20, 18, 45, 0, 0, time.UTC),
		},
		{
			ID:          "6",
			Name:        "Tansen's Musical Corner",
			Description: "A acoustic sweet spot near Tansen's tomb where every whisper echoes with musical resonance. Local musicians gather here for impromptu jam sessions.",
			Story:       "I'm a music student and heard about this place from my professor. The acoustics here are incredible - even a simple hum resonates beautifully. I've met some amazing musicians here who taught me more about music in one evening than months of formal classes.",
			Vibe:        spot.VibeCreative,
			Ratings:     spot.Ratings{Uniqueness: 5, Vibe: 5, Safety: 4, CrowdLevel: 3},
			Location: spot.Location{
				Coordinate: geo.Coordinate{Lat: 26.2167, Lng: 78.1854},
				Address:    "Near Tansen Tomb, Gwalior",
			},
			Images:      []string{"https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&h=600&fit=crop"},
			Author:      "Aryan V.",
			Experiences: 42,
			CreatedAt:   time.Date(2024, 2, 15, 20, 30, 0, 0, time.UTC),
		},
		{
			ID:          "7",
			Name:        "Gopachal Parvat Cave Temple",
			Description: "Ancient Jain cave temples carved into rock faces, where silence speaks louder than words. A spiritual retreat from the modern world.",
			Story:       "My meditation teacher brought our group here for a silent retreat. Sitting in these 1500-year-old caves, surrounded by intricate carvings of Tirthankaras, I experienced the deepest meditation of my life. The energy here is indescribable - pure peace and ancient wisdom.",
			Vibe:        spot.VibeSerene,
			Ratings:     spot.Ratings{Uniqueness: 5, Vibe: 5, Safety: 4, CrowdLevel: 2},
			Location: spot.Location{
				Coordinate: geo.Coordinate{Lat: 26.2134, Lng: 78.1689},
				Address:    "Gopachal Parvat, Gwalior Fort Complex",
			},
			Images:      []string{"https://images.unsplash.com/photo-1548013146-72479768bada?w=800&h=600&fit=crop"},
			Author:      "Sanjana M.",
			Experiences: 29,
			CreatedAt:   time.Date(2024, 2, 10, 16, 15, 0, 0, time.UTC),
		},
		{
			ID:          "8",
			Name:        "Kala Vithika Art Gallery Rooftop",
			Description: "A rooftop space above the city's contemporary art gallery where sunset meets creativity. Local artists display their work under the open sky.",
			Story:       "I stumbled upon this during an art exhibition. The curator mentioned they sometimes host rooftop shows. I attended one last month - watching contemporary art pieces against the backdrop of Gwalior's ancient skyline while the sun set was surreal. It's where tradition meets modernity.",
			Vibe:        spot.VibeCreative,
			Ratings:     spot.Ratings{Uniqueness: 4, Vibe: 4, Safety: 5, CrowdLevel: 2},
			Location: spot.Location{
				Coordinate: geo.Coordinate{Lat: 26.2178, Lng: 78.1756},
				Address:    "Kala Vithika, City Center, Gwalior",
			},
			Images:      []string{"https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=800&h=600&fit=crop"},
			Author:      "Nisha P.",
			Experiences: 21,
			CreatedAt:   time.Date(2024, 2, 5, 19, 20, 0, 0, time.UTC),
		},
	}
}
