package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"ddoslab/config"
	"ddoslab/internal/model"
	"ddoslab/internal/service"
)

// Simulator 攻击模拟器，向服务端随机投递模拟攻击
type Simulator struct {
	serverURL string
	token     string
	client    *http.Client
}

// NewSimulator 创建模拟器
func NewSimulator(serverURL, token string) *Simulator {
	return &Simulator{
		serverURL: serverURL,
		token:     token,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// GenerateAttack 生成一条随机攻击
func (s *Simulator) GenerateAttack() service.RecordAttackReq {
	attackTypes := model.AttackTypes()
	attackType := attackTypes[rand.Intn(len(attackTypes))]

	// 攻击源用TEST-NET网段，目标固定在内网
	sourceIP := fmt.Sprintf("203.0.113.%d", rand.Intn(254)+1)
	targetIP := fmt.Sprintf("10.0.0.%d", rand.Intn(254)+1)

	portPool := []int{22, 53, 80, 443, 3389, 8080}
	portCount := rand.Intn(3) + 1
	ports := make([]int, 0, portCount)
	for i := 0; i < portCount; i++ {
		ports = append(ports, portPool[rand.Intn(len(portPool))])
	}

	return service.RecordAttackReq{
		SourceIP:        sourceIP,
		TargetIP:        targetIP,
		AttackType:      string(attackType),
		PacketCount:     rand.Intn(100000) + 1000,
		DurationSeconds: rand.Intn(600) + 10,
		TargetPorts:     ports,
	}
}

// Send 把攻击投递给服务端
func (s *Simulator) Send(req service.RecordAttackReq) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest(http.MethodPost, s.serverURL+"/api/v1/attacks", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	simulator := NewSimulator(cfg.Simulator.ServerURL, cfg.Token)
	interval := time.Duration(cfg.Simulator.IntervalSeconds) * time.Second

	log.Printf("Simulator started, target %s, interval %v", cfg.Simulator.ServerURL, interval)

	sent := 0
	for {
		attack := simulator.GenerateAttack()
		if err := simulator.Send(attack); err != nil {
			log.Printf("Failed to send attack: %v", err)
		} else {
			sent++
			log.Printf("Sent %s attack from %s (%d total)", attack.AttackType, attack.SourceIP, sent)
		}

		// count为0表示一直跑
		if cfg.Simulator.Count > 0 && sent >= cfg.Simulator.Count {
			log.Printf("Done, sent %d attacks", sent)
			return
		}

		time.Sleep(interval)
	}
}
