// 靶场探测客户端：加入服务器后周期性瞄准靶标射击，
// 统计命中率与往返延迟，用于验证延迟补偿效果
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"
	"time"

	kcp "github.com/xtaci/kcp-go/v5"

	gamev1 "propstrike/api/gen/propstrike/v1"
	"propstrike/pkg/protocol"
	"propstrike/pkg/sim"
)

const maxPacketSize = 4096

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "服务器地址")
	proto := flag.String("proto", "kcp", "传输协议 (kcp/tcp)")
	name := flag.String("name", "probe", "玩家名")
	fireInterval := flag.Duration("fire", 500*time.Millisecond, "射击间隔")
	lerpMs := flag.Int("lerp", 100, "上报的插值延迟（毫秒）")
	noComp := flag.Bool("no-comp", false, "关闭延迟补偿")
	flag.Parse()

	conn, err := dial(*proto, *addr)
	if err != nil {
		log.Fatalf("连接失败: %v", err)
	}
	defer conn.Close()

	c := &probe{
		conn:   conn,
		name:   *name,
		lerpMs: int32(*lerpMs),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := c.join(); err != nil {
		log.Fatalf("加入失败: %v", err)
	}

	if *noComp {
		if err := c.sendPrefs(false); err != nil {
			log.Fatalf("发送偏好失败: %v", err)
		}
		log.Println("已关闭延迟补偿")
	}

	c.run(*fireInterval)
}

func dial(proto, addr string) (net.Conn, error) {
	switch proto {
	case "tcp":
		return net.Dial("tcp", addr)
	case "kcp":
		sess, err := kcp.DialWithOptions(addr, nil, 0, 0)
		if err != nil {
			return nil, err
		}
		sess.SetNoDelay(1, 10, 2, 1)
		return sess, nil
	default:
		return nil, fmt.Errorf("不支持的协议: %s", proto)
	}
}

type probe struct {
	conn   net.Conn
	name   string
	lerpMs int32
	rng    *rand.Rand

	playerID int32
	station  int32
	seq      int32

	// 最近一次状态广播里的靶标
	props []*gamev1.PropState

	shots int
	hits  int
}

// join 发送加入请求并等待响应
func (p *probe) join() error {
	pkt, err := protocol.NewJoinRequestPacket(p.name)
	if err != nil {
		return err
	}
	if err := p.writePacket(pkt); err != nil {
		return err
	}

	for {
		in, err := p.readPacket()
		if err != nil {
			return err
		}
		if in.Type != gamev1.MessageType_MESSAGE_TYPE_JOIN_RESPONSE {
			continue
		}
		resp, err := protocol.ParseJoinResponse(in)
		if err != nil {
			return err
		}
		if !resp.Success {
			return fmt.Errorf("服务器拒绝: %s", resp.ErrorMessage)
		}
		p.playerID = resp.PlayerId
		p.station = resp.Station
		log.Printf("加入成功: 玩家 %d, 射击位 %d, TPS %d", resp.PlayerId, resp.Station, resp.Tps)
		return nil
	}
}

func (p *probe) sendPrefs(lagCompensation bool) error {
	pkt, err := protocol.NewPrefsUpdatePacket(lagCompensation)
	if err != nil {
		return err
	}
	return p.writePacket(pkt)
}

// run 主循环：读包走单独 goroutine，定时器驱动射击与统计
func (p *probe) run(fireInterval time.Duration) {
	packets := make(chan *gamev1.Packet, 256)
	go func() {
		for {
			pkt, err := p.readPacket()
			if err != nil {
				log.Printf("连接断开: %v", err)
				close(packets)
				return
			}
			packets <- pkt
		}
	}()

	fireTicker := time.NewTicker(fireInterval)
	defer fireTicker.Stop()
	statTicker := time.NewTicker(10 * time.Second)
	defer statTicker.Stop()

	for {
		select {
		case pkt, ok := <-packets:
			if !ok {
				return
			}
			p.handlePacket(pkt)

		case <-fireTicker.C:
			p.fire()

		case <-statTicker.C:
			if p.shots > 0 {
				log.Printf("统计: %d 发 %d 中, 命中率 %.1f%%",
					p.shots, p.hits, float64(p.hits)*100/float64(p.shots))
			}
		}
	}
}

func (p *probe) handlePacket(pkt *gamev1.Packet) {
	switch pkt.Type {
	case gamev1.MessageType_MESSAGE_TYPE_PING:
		// 回 Pong，服务器据此测量 RTT
		ping, err := protocol.ParsePing(pkt)
		if err != nil {
			return
		}
		out, err := protocol.NewPongPacket(ping.ClientTime, time.Now().UnixMilli(), 0)
		if err != nil {
			return
		}
		_ = p.writePacket(out)

	case gamev1.MessageType_MESSAGE_TYPE_SERVER_STATE:
		state, err := protocol.ParseServerState(pkt)
		if err != nil {
			return
		}
		p.props = state.Props

	case gamev1.MessageType_MESSAGE_TYPE_ARENA_RESET:
		reset, err := protocol.ParseArenaReset(pkt)
		if err != nil {
			return
		}
		p.props = nil
		log.Printf("新一轮开始，种子 %d", reset.GameSeed)

	case gamev1.MessageType_MESSAGE_TYPE_FIRE_RESULT:
		result, err := protocol.ParseFireResult(pkt)
		if err != nil {
			return
		}
		p.shots++
		if result.Hit {
			p.hits++
			log.Printf("命中靶标 %d (%s), 距离 %.1f, 回溯 %d ms, 得分 %+d",
				result.PropId, result.PropClass, result.Distance, result.RewindMs, result.Score)
		}
	}
}

// fire 从最近的状态广播里挑一个靶标瞄准射击
func (p *probe) fire() {
	if len(p.props) == 0 {
		return
	}
	target := p.props[p.rng.Intn(len(p.props))]
	if !target.Alive {
		return
	}

	eye := sim.ShooterEyePos(int(p.station))
	aim := protocol.ProtoToVec3(target.Position).Sub(eye)
	if aim.Len() < 1e-6 {
		return
	}
	aim = aim.Normalize()

	p.seq++
	pkt, err := protocol.NewFireRequestPacket(p.seq, protocol.Vec3ToProto(aim), time.Now().UnixMilli(), p.lerpMs)
	if err != nil {
		return
	}
	_ = p.writePacket(pkt)
}

// writePacket 长度前缀 + 包体
func (p *probe) writePacket(pkt *gamev1.Packet) error {
	data, err := protocol.MarshalPacket(pkt)
	if err != nil {
		return err
	}
	if err := binary.Write(p.conn, binary.BigEndian, uint32(len(data))); err != nil {
		return err
	}
	_, err = p.conn.Write(data)
	return err
}

func (p *probe) readPacket() (*gamev1.Packet, error) {
	var length uint32
	if err := binary.Read(p.conn, binary.BigEndian, &length); err != nil {
		return nil, err
	}
	if length == 0 || length > maxPacketSize {
		return nil, fmt.Errorf("非法消息长度: %d", length)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(p.conn, data); err != nil {
		return nil, err
	}
	return protocol.UnmarshalPacket(data)
}
