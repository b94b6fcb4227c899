package helper

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"Tabitomo-App/internal/domain/model"
)

// toOrbPoint model.LatLng を orb.Point に変換（orbは経度が先）
func toOrbPoint(p model.LatLng) orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// Midpoint 2地点の中間地点を計算する
func Midpoint(a, b model.LatLng) model.LatLng {
	mid := geo.Midpoint(toOrbPoint(a), toOrbPoint(b))
	return model.LatLng{
		Lat: mid.Lat(),
		Lng: mid.Lon(),
	}
}

// DistanceMeters 2地点間の距離を計算する (m)
func DistanceMeters(a, b model.LatLng) float64 {
	return geo.Distance(toOrbPoint(a), toOrbPoint(b))
}

// DistanceKm 2地点間の距離を計算する (km)
func DistanceKm(a, b model.LatLng) float64 {
	return DistanceMeters(a, b) / 1000.0
}
