package services

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// ImageResult is a resolved destination image. Credit is empty for the
// generic fallback.
type ImageResult struct {
	URL    string `json:"url"`
	Credit string `json:"credit,omitempty"`
}

type ImageServiceInterface interface {
	CityImage(city, country string) ImageResult
}

const fallbackImageURL = "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=1200"

// Destination images are effectively static metadata, so a fixed lookup table
// stands in for a live image search.
var cityImageTable = map[string]string{
	"jeju island": "https://images.unsplash.com/photo-1548115184-bc6544d06a58?w=1200",
	"tokyo":       "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=1200",
	"kyoto":       "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=1200",
	"osaka":       "https://images.unsplash.com/photo-1590559899731-a382839e5549?w=1200",
	"seoul":       "https://images.unsplash.com/photo-1517154421773-0529f29ea451?w=1200",
	"busan":       "https://images.unsplash.com/photo-1578037571214-25e07ed5cc31?w=1200",
	"bangkok":     "https://images.unsplash.com/photo-1508009603885-50cf7c579365?w=1200",
	"chiang mai":  "https://images.unsplash.com/photo-1512553353614-82a7370096dc?w=1200",
	"bali":        "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=1200",
	"singapore":   "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?w=1200",
	"da nang":     "https://images.unsplash.com/photo-1559592413-7cec4d0cae2b?w=1200",
	"hanoi":       "https://images.unsplash.com/photo-1509030450996-dd1a26dda07a?w=1200",
	"paris":       "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=1200",
	"london":      "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=1200",
	"rome":        "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=1200",
	"barcelona":   "https://images.unsplash.com/photo-1583422409516-2895a77efded?w=1200",
	"prague":      "https://images.unsplash.com/photo-1541849546-216549ae216d?w=1200",
	"new york":    "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=1200",
	"sydney":      "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?w=1200",
	"queenstown":  "https://images.unsplash.com/photo-1507699622108-4be3abd695ad?w=1200",
}

type cachedImage struct {
	result    ImageResult
	timestamp time.Time
}

// ImageService resolves destination images from the static table and keeps a
// bounded per-instance cache keyed "city-country". Entries expire after ttl;
// when the cache exceeds maxEntries, expired entries are swept out.
type ImageService struct {
	mu         sync.RWMutex
	cache      map[string]cachedImage
	maxEntries int
	ttl        time.Duration
}

func NewImageService() ImageServiceInterface {
	return &ImageService{
		cache:      make(map[string]cachedImage),
		maxEntries: 256,
		ttl:        time.Hour,
	}
}

func (s *ImageService) CityImage(city, country string) ImageResult {
	key := cacheKey(city, country)

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok && time.Since(cached.timestamp) < s.ttl {
		return cached.result
	}

	result := lookupCityImage(city)
	s.store(key, result)
	return result
}

func (s *ImageService) store(key string, result ImageResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[key] = cachedImage{result: result, timestamp: time.Now()}

	if len(s.cache) > s.maxEntries {
		for k, v := range s.cache {
			if time.Since(v.timestamp) >= s.ttl {
				delete(s.cache, k)
			}
		}
	}
}

func lookupCityImage(city string) ImageResult {
	if url, ok := cityImageTable[strings.ToLower(strings.TrimSpace(city))]; ok {
		return ImageResult{URL: url, Credit: "Unsplash"}
	}
	return ImageResult{URL: fallbackImageURL}
}

func cacheKey(city, country string) string {
	return fmt.Sprintf("%s-%s", strings.ToLower(strings.TrimSpace(city)), strings.ToLower(strings.TrimSpace(country)))
}
