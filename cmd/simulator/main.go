package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
)

// shuttleState tracks one simulated shuttle moving along the campus loop.
type shuttleState struct {
	VehicleID int
	StopIndex int     // stop the shuttle is moving away from
	Progress  float64 // 0..1 along the current segment
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// step advances the shuttle along the loop and returns its new position
// together with the halte it is approaching.
func (s *shuttleState) step(stepFrac float64) (lat, lng float64, halte string) {
	s.Progress += stepFrac
	for s.Progress >= 1 {
		s.Progress -= 1
		s.StopIndex = (s.StopIndex + 1) % len(models.RouteStops)
	}
	from := models.RouteStops[s.StopIndex]
	to := models.RouteStops[(s.StopIndex+1)%len(models.RouteStops)]
	return lerp(from.Lat, to.Lat, s.Progress), lerp(from.Lng, to.Lng, s.Progress), to.Name
}

func sendPosition(apiURL string, vehicleID int, update models.PositionUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("marshal position: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/vehicles/%d", apiURL, vehicleID), bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("position update failed with status: %d", resp.StatusCode)
	}
	return nil
}

func publishPosition(client mqtt.Client, vehicleID int, update models.PositionUpdate) {
	if client == nil {
		return
	}
	data, err := json.Marshal(update)
	if err != nil {
		log.WithError(err).Error("Failed to marshal MQTT payload")
		return
	}
	topic := fmt.Sprintf("shuttle/vehicles/%d/position", vehicleID)
	if token := client.Publish(topic, 0, false, data); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).WithField("topic", topic).Error("Failed to publish position")
	}
}

func connectMQTT(broker string) mqtt.Client {
	if broker == "" {
		return nil
	}
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("shuttle-simulator").
		SetConnectTimeout(10 * time.Second)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).Warn("MQTT broker unreachable, continuing with HTTP only")
		return nil
	}
	log.WithField("broker", broker).Info("Connected to MQTT broker")
	return client
}

func simulateShuttle(apiURL string, mqttClient mqtt.Client, s *shuttleState, interval time.Duration) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for range tick.C {
		// uneven progress so the shuttles drift apart over time
		lat, lng, halte := s.step(0.08 + rand.Float64()*0.06)
		update := models.PositionUpdate{Lat: lat, Lng: lng, CurrentHalte: halte}

		if err := sendPosition(apiURL, s.VehicleID, update); err != nil {
			log.WithError(err).WithField("vehicle_id", s.VehicleID).Error("Failed to send position")
			continue
		}
		publishPosition(mqttClient, s.VehicleID, update)

		log.WithFields(log.Fields{
			"vehicle_id": s.VehicleID,
			"lat":        lat,
			"lng":        lng,
			"halte":      halte,
		}).Info("Sent position")
	}
}

func main() {
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:3000/api"
	}

	fleetSize := 3
	if val := os.Getenv("FLEET_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			fleetSize = n
		}
	}

	interval := 3 * time.Second
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			interval = time.Duration(n) * time.Second
		}
	}

	mqttClient := connectMQTT(os.Getenv("MQTT_BROKER"))

	log.WithFields(log.Fields{
		"fleet_size": fleetSize,
		"api_url":    apiURL,
		"interval":   interval,
	}).Info("Starting shuttle simulation")

	for i := 0; i < fleetSize; i++ {
		state := &shuttleState{
			VehicleID: i + 1,
			StopIndex: rand.Intn(len(models.RouteStops)),
			Progress:  rand.Float64(),
		}
		go simulateShuttle(apiURL, mqttClient, state, interval)
	}

	select {} // Block forever
}
