package server

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	gamev1 "propstrike/api/gen/propstrike/v1"
	"propstrike/pkg/lagcomp"
	"propstrike/pkg/protocol"
	"propstrike/pkg/sim"
)

// 计分规则
const (
	ScoreCrate  = 1
	ScoreBarrel = 2
	ScoreDecoy  = -2 // 诱饵命中扣分
)

// 断线后保留玩家档案的宽限期
const ReconnectGrace = 30 * time.Second

// Arena 靶场：单一模拟循环驱动世界推进、快照采样与补偿射击判定
// 所有状态只在 Run 的 goroutine 中访问，外部通过通道投递事件
type Arena struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg  Config
	seed int64

	world *sim.World
	comp  *lagcomp.Manager
	prefs *PrefsStore

	frame   atomic.Int32 // 当前帧号，心跳响应跨 goroutine 读取
	propIDs []int        // 全部靶标槽位，补偿编排的候选集合

	roundEndsAt float64 // 本轮结束的模拟时刻，0 表示不限时

	connections  map[int32]Session
	players      map[int32]*playerInfo
	nextPlayerID int32
	stations     [MaxPlayers]bool // 射击位占用表

	fireQueue []*FireEvent // 本 tick 待判定的射击，采样之后统一处理

	joinCh      chan joinRequest
	reconnectCh chan reconnectRequest
	fireCh      chan *FireEvent
	prefsCh     chan *PrefsEvent
	leaveCh     chan int32
}

type playerInfo struct {
	id             int32
	name           string
	station        int32
	score          int32
	disconnectedAt time.Time // 零值表示在线
}

type joinRequest struct {
	sess   Session
	req    *JoinEvent
	respCh chan error
}

type reconnectRequest struct {
	sess   Session
	claims *Claims
	respCh chan error
}

// NewArena 创建靶场并初始化补偿引擎
// 补偿配置无效时直接失败，阻止服务器启动
func NewArena(parent context.Context, cfg Config) (*Arena, error) {
	ctx, cancel := context.WithCancel(parent)

	seed := cfg.SeedOrNow()
	world := sim.NewWorld(cfg.MaxProps, seed)

	comp, err := lagcomp.NewManager(cfg.LagcompConfig(), world)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("初始化补偿引擎失败: %w", err)
	}

	a := &Arena{
		ctx:          ctx,
		cancel:       cancel,
		cfg:          cfg,
		seed:         seed,
		world:        world,
		comp:         comp,
		prefs:        NewPrefsStore(),
		propIDs:      make([]int, cfg.MaxProps),
		connections:  make(map[int32]Session),
		players:      make(map[int32]*playerInfo),
		nextPlayerID: 1,
		joinCh:       make(chan joinRequest),
		reconnectCh:  make(chan reconnectRequest),
		fireCh:       make(chan *FireEvent, 256),
		prefsCh:      make(chan *PrefsEvent, 64),
		leaveCh:      make(chan int32, 256),
	}

	for id := range a.propIDs {
		a.propIDs[id] = id
		a.applyClassFlags(id)
	}

	if cfg.RoundSeconds > 0 {
		a.roundEndsAt = float64(cfg.RoundSeconds)
	}

	return a, nil
}

// applyClassFlags 按靶标类型设置补偿资格
// 生成/重生后调用；诱饵默认进黑名单（按实体类型的资格配置）
func (a *Arena) applyClassFlags(id int) {
	p := a.world.Prop(id)
	if p == nil {
		return
	}
	a.comp.SetCompensated(id, true)
	blacklisted := p.Class == sim.PropDecoy && !a.cfg.CompensateDecoys
	a.comp.SetBlacklisted(id, blacklisted)
}

// Run 靶场主循环
func (a *Arena) Run(wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := time.NewTicker(a.cfg.TickDuration())
	defer ticker.Stop()

	log.Printf("靶场循环启动: %d TPS, %d 个靶标, 最大回溯 %d ms",
		a.cfg.TPS, a.cfg.MaxProps, a.cfg.MaxLookbackMs)

	for {
		select {
		case <-a.ctx.Done():
			a.closeAllConnections(false)
			log.Println("靶场循环停止")
			return

		case req := <-a.joinCh:
			a.handleJoin(req)

		case req := <-a.reconnectCh:
			a.handleReconnect(req)

		case ev := <-a.fireCh:
			a.queueFire(ev)

		case ev := <-a.prefsCh:
			a.handlePrefs(ev)

		case playerID := <-a.leaveCh:
			a.handleLeave(playerID)

		case <-ticker.C:
			a.tick()
		}
	}
}

// Shutdown 停止靶场
func (a *Arena) Shutdown() {
	a.cancel()
}

// Frame 当前帧号
func (a *Arena) Frame() int32 {
	return a.frame.Load()
}

// Join 投递加入请求并等待结果
func (a *Arena) Join(sess Session, req *JoinEvent) error {
	respCh := make(chan error, 1)

	select {
	case <-a.ctx.Done():
		return fmt.Errorf("靶场已关闭")
	case a.joinCh <- joinRequest{sess: sess, req: req, respCh: respCh}:
	}

	select {
	case <-a.ctx.Done():
		return fmt.Errorf("靶场已关闭")
	case err := <-respCh:
		return err
	}
}

// Reconnect 投递重连请求并等待结果
func (a *Arena) Reconnect(sess Session, claims *Claims) error {
	respCh := make(chan error, 1)

	select {
	case <-a.ctx.Done():
		return fmt.Errorf("靶场已关闭")
	case a.reconnectCh <- reconnectRequest{sess: sess, claims: claims, respCh: respCh}:
	}

	select {
	case <-a.ctx.Done():
		return fmt.Errorf("靶场已关闭")
	case err := <-respCh:
		return err
	}
}

// EnqueueFire 投递射击请求
func (a *Arena) EnqueueFire(ev *FireEvent) {
	select {
	case <-a.ctx.Done():
	case a.fireCh <- ev:
	}
}

// EnqueuePrefs 投递偏好更新
func (a *Arena) EnqueuePrefs(ev *PrefsEvent) {
	select {
	case <-a.ctx.Done():
	case a.prefsCh <- ev:
	}
}

// Leave 投递离开事件
func (a *Arena) Leave(playerID int32) {
	select {
	case <-a.ctx.Done():
	case a.leaveCh <- playerID:
	}
}

// tick 单个模拟步长
// 顺序固定：物理推进 -> 快照采样 -> 射击判定 -> 广播
// 采样总在判定之前，保证最新样本覆盖刚结束的这一步
func (a *Arena) tick() {
	dt := 1.0 / float64(a.cfg.TPS)

	respawned := a.world.Step(dt)
	for _, id := range respawned {
		a.applyClassFlags(id)
	}

	if a.roundEndsAt > 0 && a.world.Time >= a.roundEndsAt {
		a.resetRound()
	}

	a.comp.CaptureTick(a.world.Time)

	a.processFires()
	a.purgeDisconnected()

	a.frame.Add(1)
	a.broadcastState()
}

// resetRound 一轮结束：换种子重开靶标、清空补偿槽位与得分
// 所有槽位世代递增，跨轮存活的回溯会话不会写到新靶标上
func (a *Arena) resetRound() {
	seed := time.Now().UnixNano()
	a.seed = seed
	a.world.Reset(seed)

	for _, id := range a.propIDs {
		a.comp.ResetSlot(id)
		a.applyClassFlags(id)
	}
	a.fireQueue = a.fireQueue[:0]

	for _, p := range a.players {
		p.score = 0
	}
	a.roundEndsAt = a.world.Time + float64(a.cfg.RoundSeconds)

	log.Printf("新一轮开始，种子 %d", seed)

	packet, err := protocol.NewArenaResetPacket(seed)
	if err != nil {
		return
	}
	data, err := protocol.MarshalPacket(packet)
	if err != nil {
		return
	}
	for _, sess := range a.connections {
		_ = sess.Send(data)
	}
}

// queueFire 射击请求先排队，统一在 tick 内采样之后判定
func (a *Arena) queueFire(ev *FireEvent) {
	if _, exists := a.connections[ev.PlayerID]; !exists {
		return
	}
	a.fireQueue = append(a.fireQueue, ev)
}

func (a *Arena) processFires() {
	if len(a.fireQueue) == 0 {
		return
	}
	fires := a.fireQueue
	a.fireQueue = a.fireQueue[:0]

	for _, ev := range fires {
		a.handleFire(ev)
	}
}

// handleFire 一次补偿射击判定
// 按请求方延迟回溯靶标、执行命中检测、恢复，随后结算得分
func (a *Arena) handleFire(ev *FireEvent) {
	p := a.players[ev.PlayerID]
	sess := a.connections[ev.PlayerID]
	if p == nil || sess == nil {
		return
	}

	origin := sim.ShooterEyePos(int(p.station))

	// 单向延迟取 RTT 的一半，再加上客户端自己的插值延迟
	latency := float64(sess.RTTMillis())/2000.0 + float64(ev.LerpMs)/1000.0

	var hit sim.Hit
	var hitOK bool
	evaluate := func() {
		hit, hitOK = a.world.Raycast(origin, ev.AimDir, sim.MaxShotDistance)
	}

	compensated := a.prefs.LagCompensation(p.name)

	var stats lagcomp.Stats
	if compensated {
		stats = a.comp.EvaluateCompensated(latency, a.propIDs, evaluate)
		if stats.Conflicts > 0 {
			// 正确的编排下不应出现，留日志排查
			log.Printf("玩家 %d: 射击判定遇到 %d 个会话冲突", ev.PlayerID, stats.Conflicts)
		}
	} else {
		evaluate()
	}

	result := &gamev1.FireResult{
		Seq:         ev.Seq,
		Compensated: compensated,
	}
	if compensated {
		result.RewindMs = int32((a.world.Time-stats.TargetTime)*1000 + 0.5)
	}

	if hitOK {
		prop := a.world.Prop(hit.PropID)
		// 处于回溯状态的靶标屏蔽销毁等副作用，只允许当前判定读取
		if prop != nil && !a.comp.CheckFlag(hit.PropID, lagcomp.FlagBlockTrigger) {
			prop.Hits++

			score := int32(ScoreCrate)
			switch prop.Class {
			case sim.PropBarrel:
				score = ScoreBarrel
			case sim.PropDecoy:
				score = ScoreDecoy
			}
			p.score += score

			destroyed := prop.Hits >= prop.Durability

			result.Hit = true
			result.PropId = int32(hit.PropID)
			result.PropClass = protocol.SimPropClassToProto(prop.Class)
			result.Distance = hit.Distance
			result.Destroyed = destroyed
			result.Score = score

			if destroyed {
				// 销毁靶标并重置补偿槽位：历史清空，世代递增，
				// 重生的新靶标不会继承旧靶标的任何状态
				a.world.Destroy(hit.PropID)
				a.comp.ResetSlot(hit.PropID)
				log.Printf("玩家 %d 摧毁靶标 %d (%s)", ev.PlayerID, hit.PropID, prop.Class)
			}
		}
	}

	packet, err := protocol.NewFireResultPacket(result)
	if err != nil {
		log.Printf("序列化射击结果失败: %v", err)
		return
	}
	data, err := protocol.MarshalPacket(packet)
	if err != nil {
		log.Printf("序列化射击结果失败: %v", err)
		return
	}
	if err := sess.Send(data); err != nil {
		log.Printf("发送射击结果到玩家 %d 失败: %v", ev.PlayerID, err)
	}
}

// handleJoin 处理加入请求
func (a *Arena) handleJoin(req joinRequest) {
	station, ok := a.freeStation()
	if !ok {
		req.respCh <- fmt.Errorf("靶场已满 (%d/%d)", a.onlineCount(), MaxPlayers)
		return
	}

	playerID := a.nextPlayerID
	a.nextPlayerID++

	name := req.req.PlayerName
	if name == "" {
		name = fmt.Sprintf("player-%d", playerID)
	}

	token, err := GenerateSessionToken(playerID, name, station, a.prefs.LagCompensation(name))
	if err != nil {
		req.respCh <- fmt.Errorf("生成会话 Token 失败: %w", err)
		return
	}

	packet, err := protocol.NewJoinResponsePacket(true, playerID, "", int32(a.cfg.TPS), a.seed, token, station)
	if err != nil {
		req.respCh <- fmt.Errorf("序列化加入响应失败: %w", err)
		return
	}
	data, err := protocol.MarshalPacket(packet)
	if err != nil {
		req.respCh <- fmt.Errorf("序列化加入响应失败: %w", err)
		return
	}
	if err := req.sess.Send(data); err != nil {
		req.respCh <- fmt.Errorf("发送加入响应失败: %w", err)
		return
	}

	a.stations[station] = true
	a.players[playerID] = &playerInfo{id: playerID, name: name, station: station}
	req.sess.SetPlayerID(playerID)
	a.connections[playerID] = req.sess

	log.Printf("玩家 %d (%s) 加入，射击位 %d", playerID, name, station)
	req.respCh <- nil
}

// handleReconnect 处理断线重连
// 宽限期内档案仍在：恢复连接与偏好，沿用原射击位
func (a *Arena) handleReconnect(req reconnectRequest) {
	p := a.players[req.claims.PlayerID]
	if p == nil {
		req.respCh <- fmt.Errorf("会话已过期")
		return
	}
	if p.disconnectedAt.IsZero() {
		req.respCh <- fmt.Errorf("玩家仍在线")
		return
	}

	// 偏好以服务端存档优先，存档缺失时用 Token 里携带的值兜底
	if !a.prefs.Has(p.name) {
		a.prefs.SetLagCompensation(p.name, req.claims.LagCompensation)
	}

	packet, err := protocol.NewJoinResponsePacket(true, p.id, "", int32(a.cfg.TPS), a.seed, "", p.station)
	if err != nil {
		req.respCh <- fmt.Errorf("序列化重连响应失败: %w", err)
		return
	}
	data, err := protocol.MarshalPacket(packet)
	if err != nil {
		req.respCh <- fmt.Errorf("序列化重连响应失败: %w", err)
		return
	}
	if err := req.sess.Send(data); err != nil {
		req.respCh <- fmt.Errorf("发送重连响应失败: %w", err)
		return
	}

	p.disconnectedAt = time.Time{}
	req.sess.SetPlayerID(p.id)
	a.connections[p.id] = req.sess

	log.Printf("玩家 %d (%s) 重连成功", p.id, p.name)
	req.respCh <- nil
}

// handlePrefs 更新玩家偏好
func (a *Arena) handlePrefs(ev *PrefsEvent) {
	p := a.players[ev.PlayerID]
	if p == nil {
		return
	}
	a.prefs.SetLagCompensation(p.name, ev.LagCompensation)
	log.Printf("玩家 %d (%s) 延迟补偿偏好: %v", p.id, p.name, ev.LagCompensation)
}

// handleLeave 连接断开：摘掉连接，档案保留一个宽限期等待重连
func (a *Arena) handleLeave(playerID int32) {
	p := a.players[playerID]
	if p == nil {
		return
	}

	delete(a.connections, playerID)
	p.disconnectedAt = time.Now()

	log.Printf("玩家 %d (%s) 断开，在线人数: %d", playerID, p.name, a.onlineCount())
}

// purgeDisconnected 清理超过宽限期未重连的玩家
func (a *Arena) purgeDisconnected() {
	for playerID, p := range a.players {
		if p.disconnectedAt.IsZero() || time.Since(p.disconnectedAt) < ReconnectGrace {
			continue
		}

		a.stations[p.station] = false
		delete(a.players, playerID)

		log.Printf("玩家 %d (%s) 超时移除", playerID, p.name)

		packet, err := protocol.NewPlayerLeavePacket(playerID)
		if err != nil {
			continue
		}
		data, err := protocol.MarshalPacket(packet)
		if err != nil {
			continue
		}
		for _, sess := range a.connections {
			sess.Send(data)
		}
	}
}

// broadcastState 广播世界状态
func (a *Arena) broadcastState() {
	if len(a.connections) == 0 {
		return
	}

	props := protocol.SimPropsToProto(a.world)

	players := make([]*gamev1.PlayerState, 0, len(a.players))
	for _, p := range a.players {
		ps := &gamev1.PlayerState{
			Id:      p.id,
			Name:    p.name,
			Station: p.station,
			Score:   p.score,
		}
		if sess, ok := a.connections[p.id]; ok {
			ps.RttMs = int32(sess.RTTMillis())
		}
		players = append(players, ps)
	}

	packet, err := protocol.NewServerStatePacket(a.frame.Load(), a.world.Time, props, players)
	if err != nil {
		log.Printf("序列化状态失败: %v", err)
		return
	}
	data, err := protocol.MarshalPacket(packet)
	if err != nil {
		log.Printf("序列化状态失败: %v", err)
		return
	}

	for playerID, sess := range a.connections {
		if err := sess.Send(data); err != nil {
			log.Printf("发送状态到玩家 %d 失败: %v", playerID, err)
		}
	}
}

func (a *Arena) closeAllConnections(notify bool) {
	for _, sess := range a.connections {
		if notify {
			sess.Close()
		} else {
			sess.CloseWithoutNotify()
		}
	}
}

func (a *Arena) onlineCount() int {
	return len(a.connections)
}

// freeStation 找一个空闲射击位
func (a *Arena) freeStation() (int32, bool) {
	for i := int32(0); i < MaxPlayers; i++ {
		if !a.stations[i] {
			return i, true
		}
	}
	return -1, false
}
