// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.0
// 	protoc        (unknown)
// source: propstrike/v1/propstrike.proto

package gamev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// 消息类型
type MessageType int32

const (
	MessageType_MESSAGE_TYPE_UNSPECIFIED       MessageType = 0
	MessageType_MESSAGE_TYPE_JOIN_REQUEST      MessageType = 1
	MessageType_MESSAGE_TYPE_JOIN_RESPONSE     MessageType = 2
	MessageType_MESSAGE_TYPE_FIRE_REQUEST      MessageType = 3
	MessageType_MESSAGE_TYPE_FIRE_RESULT       MessageType = 4
	MessageType_MESSAGE_TYPE_PING              MessageType = 5
	MessageType_MESSAGE_TYPE_PONG              MessageType = 6
	MessageType_MESSAGE_TYPE_RECONNECT_REQUEST MessageType = 7
	MessageType_MESSAGE_TYPE_PREFS_UPDATE      MessageType = 8
	MessageType_MESSAGE_TYPE_SERVER_STATE      MessageType = 9
	MessageType_MESSAGE_TYPE_PLAYER_LEAVE      MessageType = 10
	MessageType_MESSAGE_TYPE_ARENA_RESET       MessageType = 11
)

// Enum value maps for MessageType.
var (
	MessageType_name = map[int32]string{
		0:  "MESSAGE_TYPE_UNSPECIFIED",
		1:  "MESSAGE_TYPE_JOIN_REQUEST",
		2:  "MESSAGE_TYPE_JOIN_RESPONSE",
		3:  "MESSAGE_TYPE_FIRE_REQUEST",
		4:  "MESSAGE_TYPE_FIRE_RESULT",
		5:  "MESSAGE_TYPE_PING",
		6:  "MESSAGE_TYPE_PONG",
		7:  "MESSAGE_TYPE_RECONNECT_REQUEST",
		8:  "MESSAGE_TYPE_PREFS_UPDATE",
		9:  "MESSAGE_TYPE_SERVER_STATE",
		10: "MESSAGE_TYPE_PLAYER_LEAVE",
		11: "MESSAGE_TYPE_ARENA_RESET",
	}
	MessageType_value = map[string]int32{
		"MESSAGE_TYPE_UNSPECIFIED":       0,
		"MESSAGE_TYPE_JOIN_REQUEST":      1,
		"MESSAGE_TYPE_JOIN_RESPONSE":     2,
		"MESSAGE_TYPE_FIRE_REQUEST":      3,
		"MESSAGE_TYPE_FIRE_RESULT":       4,
		"MESSAGE_TYPE_PING":              5,
		"MESSAGE_TYPE_PONG":              6,
		"MESSAGE_TYPE_RECONNECT_REQUEST": 7,
		"MESSAGE_TYPE_PREFS_UPDATE":      8,
		"MESSAGE_TYPE_SERVER_STATE":      9,
		"MESSAGE_TYPE_PLAYER_LEAVE":      10,
		"MESSAGE_TYPE_ARENA_RESET":       11,
	}
)

func (x MessageType) Enum() *MessageType {
	p := new(MessageType)
	*p = x
	return p
}

func (x MessageType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (MessageType) Descriptor() protoreflect.EnumDescriptor {
	return file_propstrike_v1_propstrike_proto_enumTypes[0].Descriptor()
}

func (MessageType) Type() protoreflect.EnumType {
	return &file_propstrike_v1_propstrike_proto_enumTypes[0]
}

func (x MessageType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use MessageType.Descriptor instead.
func (MessageType) EnumDescriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{0}
}

// 靶标类型
type PropClass int32

const (
	PropClass_PROP_CLASS_UNSPECIFIED PropClass = 0
	PropClass_PROP_CLASS_CRATE       PropClass = 1
	PropClass_PROP_CLASS_BARREL      PropClass = 2
	PropClass_PROP_CLASS_DECOY       PropClass = 3
)

// Enum value maps for PropClass.
var (
	PropClass_name = map[int32]string{
		0: "PROP_CLASS_UNSPECIFIED",
		1: "PROP_CLASS_CRATE",
		2: "PROP_CLASS_BARREL",
		3: "PROP_CLASS_DECOY",
	}
	PropClass_value = map[string]int32{
		"PROP_CLASS_UNSPECIFIED": 0,
		"PROP_CLASS_CRATE":       1,
		"PROP_CLASS_BARREL":      2,
		"PROP_CLASS_DECOY":       3,
	}
)

func (x PropClass) Enum() *PropClass {
	p := new(PropClass)
	*p = x
	return p
}

func (x PropClass) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PropClass) Descriptor() protoreflect.EnumDescriptor {
	return file_propstrike_v1_propstrike_proto_enumTypes[1].Descriptor()
}

func (PropClass) Type() protoreflect.EnumType {
	return &file_propstrike_v1_propstrike_proto_enumTypes[1]
}

func (x PropClass) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use PropClass.Descriptor instead.
func (PropClass) EnumDescriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{1}
}

// 统一包封装：类型 + 负载
type Packet struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          MessageType            `protobuf:"varint,1,opt,name=type,proto3,enum=propstrike.v1.MessageType" json:"type,omitempty"`
	Payload       []byte                 `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Packet) Reset() {
	*x = Packet{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Packet) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Packet) ProtoMessage() {}

func (x *Packet) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Packet.ProtoReflect.Descriptor instead.
func (*Packet) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{0}
}

func (x *Packet) GetType() MessageType {
	if x != nil {
		return x.Type
	}
	return MessageType_MESSAGE_TYPE_UNSPECIFIED
}

func (x *Packet) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type Vector3 struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X             float64                `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y             float64                `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	Z             float64                `protobuf:"fixed64,3,opt,name=z,proto3" json:"z,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Vector3) Reset() {
	*x = Vector3{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vector3) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vector3) ProtoMessage() {}

func (x *Vector3) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vector3.ProtoReflect.Descriptor instead.
func (*Vector3) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{1}
}

func (x *Vector3) GetX() float64 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Vector3) GetY() float64 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *Vector3) GetZ() float64 {
	if x != nil {
		return x.Z
	}
	return 0
}

type Quaternion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	W             float64                `protobuf:"fixed64,1,opt,name=w,proto3" json:"w,omitempty"`
	X             float64                `protobuf:"fixed64,2,opt,name=x,proto3" json:"x,omitempty"`
	Y             float64                `protobuf:"fixed64,3,opt,name=y,proto3" json:"y,omitempty"`
	Z             float64                `protobuf:"fixed64,4,opt,name=z,proto3" json:"z,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Quaternion) Reset() {
	*x = Quaternion{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Quaternion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Quaternion) ProtoMessage() {}

func (x *Quaternion) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Quaternion.ProtoReflect.Descriptor instead.
func (*Quaternion) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{2}
}

func (x *Quaternion) GetW() float64 {
	if x != nil {
		return x.W
	}
	return 0
}

func (x *Quaternion) GetX() float64 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Quaternion) GetY() float64 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *Quaternion) GetZ() float64 {
	if x != nil {
		return x.Z
	}
	return 0
}

type JoinRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlayerName    string                 `protobuf:"bytes,1,opt,name=player_name,json=playerName,proto3" json:"player_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinRequest) Reset() {
	*x = JoinRequest{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinRequest) ProtoMessage() {}

func (x *JoinRequest) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinRequest.ProtoReflect.Descriptor instead.
func (*JoinRequest) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{3}
}

func (x *JoinRequest) GetPlayerName() string {
	if x != nil {
		return x.PlayerName
	}
	return ""
}

type JoinResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	PlayerId      int32                  `protobuf:"varint,2,opt,name=player_id,json=playerId,proto3" json:"player_id,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,3,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Tps           int32                  `protobuf:"varint,4,opt,name=tps,proto3" json:"tps,omitempty"`
	GameSeed      int64                  `protobuf:"varint,5,opt,name=game_seed,json=gameSeed,proto3" json:"game_seed,omitempty"`
	SessionToken  string                 `protobuf:"bytes,6,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"`
	Station       int32                  `protobuf:"varint,7,opt,name=station,proto3" json:"station,omitempty"` // 射击位编号
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinResponse) Reset() {
	*x = JoinResponse{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinResponse) ProtoMessage() {}

func (x *JoinResponse) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinResponse.ProtoReflect.Descriptor instead.
func (*JoinResponse) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{4}
}

func (x *JoinResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *JoinResponse) GetPlayerId() int32 {
	if x != nil {
		return x.PlayerId
	}
	return 0
}

func (x *JoinResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *JoinResponse) GetTps() int32 {
	if x != nil {
		return x.Tps
	}
	return 0
}

func (x *JoinResponse) GetGameSeed() int64 {
	if x != nil {
		return x.GameSeed
	}
	return 0
}

func (x *JoinResponse) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

func (x *JoinResponse) GetStation() int32 {
	if x != nil {
		return x.Station
	}
	return 0
}

// 射击请求：服务器按请求方延迟回溯靶标后判定
type FireRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Seq           int32                  `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	AimDir        *Vector3               `protobuf:"bytes,2,opt,name=aim_dir,json=aimDir,proto3" json:"aim_dir,omitempty"`              // 视线方向（客户端坐标系与服务器一致）
	ClientTime    int64                  `protobuf:"varint,3,opt,name=client_time,json=clientTime,proto3" json:"client_time,omitempty"` // 客户端毫秒时间戳
	LerpMs        int32                  `protobuf:"varint,4,opt,name=lerp_ms,json=lerpMs,proto3" json:"lerp_ms,omitempty"`             // 客户端插值延迟（毫秒）
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FireRequest) Reset() {
	*x = FireRequest{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FireRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FireRequest) ProtoMessage() {}

func (x *FireRequest) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FireRequest.ProtoReflect.Descriptor instead.
func (*FireRequest) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{5}
}

func (x *FireRequest) GetSeq() int32 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *FireRequest) GetAimDir() *Vector3 {
	if x != nil {
		return x.AimDir
	}
	return nil
}

func (x *FireRequest) GetClientTime() int64 {
	if x != nil {
		return x.ClientTime
	}
	return 0
}

func (x *FireRequest) GetLerpMs() int32 {
	if x != nil {
		return x.LerpMs
	}
	return 0
}

type FireResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Seq           int32                  `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	Hit           bool                   `protobuf:"varint,2,opt,name=hit,proto3" json:"hit,omitempty"`
	PropId        int32                  `protobuf:"varint,3,opt,name=prop_id,json=propId,proto3" json:"prop_id,omitempty"`
	PropClass     PropClass              `protobuf:"varint,4,opt,name=prop_class,json=propClass,proto3,enum=propstrike.v1.PropClass" json:"prop_class,omitempty"`
	Distance      float64                `protobuf:"fixed64,5,opt,name=distance,proto3" json:"distance,omitempty"`
	Destroyed     bool                   `protobuf:"varint,6,opt,name=destroyed,proto3" json:"destroyed,omitempty"`
	Score         int32                  `protobuf:"varint,7,opt,name=score,proto3" json:"score,omitempty"`                       // 本次得分（诱饵为负）
	RewindMs      int32                  `protobuf:"varint,8,opt,name=rewind_ms,json=rewindMs,proto3" json:"rewind_ms,omitempty"` // 实际回溯毫秒数
	Compensated   bool                   `protobuf:"varint,9,opt,name=compensated,proto3" json:"compensated,omitempty"`           // 是否走了延迟补偿
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FireResult) Reset() {
	*x = FireResult{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FireResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FireResult) ProtoMessage() {}

func (x *FireResult) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FireResult.ProtoReflect.Descriptor instead.
func (*FireResult) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{6}
}

func (x *FireResult) GetSeq() int32 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *FireResult) GetHit() bool {
	if x != nil {
		return x.Hit
	}
	return false
}

func (x *FireResult) GetPropId() int32 {
	if x != nil {
		return x.PropId
	}
	return 0
}

func (x *FireResult) GetPropClass() PropClass {
	if x != nil {
		return x.PropClass
	}
	return PropClass_PROP_CLASS_UNSPECIFIED
}

func (x *FireResult) GetDistance() float64 {
	if x != nil {
		return x.Distance
	}
	return 0
}

func (x *FireResult) GetDestroyed() bool {
	if x != nil {
		return x.Destroyed
	}
	return false
}

func (x *FireResult) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *FireResult) GetRewindMs() int32 {
	if x != nil {
		return x.RewindMs
	}
	return 0
}

func (x *FireResult) GetCompensated() bool {
	if x != nil {
		return x.Compensated
	}
	return false
}

type Ping struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientTime    int64                  `protobuf:"varint,1,opt,name=client_time,json=clientTime,proto3" json:"client_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ping) Reset() {
	*x = Ping{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ping) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ping) ProtoMessage() {}

func (x *Ping) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ping.ProtoReflect.Descriptor instead.
func (*Ping) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{7}
}

func (x *Ping) GetClientTime() int64 {
	if x != nil {
		return x.ClientTime
	}
	return 0
}

type Pong struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientTime    int64                  `protobuf:"varint,1,opt,name=client_time,json=clientTime,proto3" json:"client_time,omitempty"`
	ServerTime    int64                  `protobuf:"varint,2,opt,name=server_time,json=serverTime,proto3" json:"server_time,omitempty"`
	ServerFrame   int32                  `protobuf:"varint,3,opt,name=server_frame,json=serverFrame,proto3" json:"server_frame,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Pong) Reset() {
	*x = Pong{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Pong) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Pong) ProtoMessage() {}

func (x *Pong) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Pong.ProtoReflect.Descriptor instead.
func (*Pong) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{8}
}

func (x *Pong) GetClientTime() int64 {
	if x != nil {
		return x.ClientTime
	}
	return 0
}

func (x *Pong) GetServerTime() int64 {
	if x != nil {
		return x.ServerTime
	}
	return 0
}

func (x *Pong) GetServerFrame() int32 {
	if x != nil {
		return x.ServerFrame
	}
	return 0
}

type ReconnectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionToken  string                 `protobuf:"bytes,1,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReconnectRequest) Reset() {
	*x = ReconnectRequest{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReconnectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReconnectRequest) ProtoMessage() {}

func (x *ReconnectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReconnectRequest.ProtoReflect.Descriptor instead.
func (*ReconnectRequest) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{9}
}

func (x *ReconnectRequest) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

// 客户端偏好：可为自己关闭延迟补偿
type PrefsUpdate struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	LagCompensation bool                   `protobuf:"varint,1,opt,name=lag_compensation,json=lagCompensation,proto3" json:"lag_compensation,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *PrefsUpdate) Reset() {
	*x = PrefsUpdate{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrefsUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrefsUpdate) ProtoMessage() {}

func (x *PrefsUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrefsUpdate.ProtoReflect.Descriptor instead.
func (*PrefsUpdate) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{10}
}

func (x *PrefsUpdate) GetLagCompensation() bool {
	if x != nil {
		return x.LagCompensation
	}
	return false
}

type PropState struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Class         PropClass              `protobuf:"varint,2,opt,name=class,proto3,enum=propstrike.v1.PropClass" json:"class,omitempty"`
	Alive         bool                   `protobuf:"varint,3,opt,name=alive,proto3" json:"alive,omitempty"`
	Position      *Vector3               `protobuf:"bytes,4,opt,name=position,proto3" json:"position,omitempty"`
	Rotation      *Quaternion            `protobuf:"bytes,5,opt,name=rotation,proto3" json:"rotation,omitempty"`
	HalfExtents   *Vector3               `protobuf:"bytes,6,opt,name=half_extents,json=halfExtents,proto3" json:"half_extents,omitempty"`
	Hits          int32                  `protobuf:"varint,7,opt,name=hits,proto3" json:"hits,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PropState) Reset() {
	*x = PropState{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PropState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PropState) ProtoMessage() {}

func (x *PropState) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PropState.ProtoReflect.Descriptor instead.
func (*PropState) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{11}
}

func (x *PropState) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *PropState) GetClass() PropClass {
	if x != nil {
		return x.Class
	}
	return PropClass_PROP_CLASS_UNSPECIFIED
}

func (x *PropState) GetAlive() bool {
	if x != nil {
		return x.Alive
	}
	return false
}

func (x *PropState) GetPosition() *Vector3 {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *PropState) GetRotation() *Quaternion {
	if x != nil {
		return x.Rotation
	}
	return nil
}

func (x *PropState) GetHalfExtents() *Vector3 {
	if x != nil {
		return x.HalfExtents
	}
	return nil
}

func (x *PropState) GetHits() int32 {
	if x != nil {
		return x.Hits
	}
	return 0
}

type PlayerState struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Station       int32                  `protobuf:"varint,3,opt,name=station,proto3" json:"station,omitempty"`
	Score         int32                  `protobuf:"varint,4,opt,name=score,proto3" json:"score,omitempty"`
	RttMs         int32                  `protobuf:"varint,5,opt,name=rtt_ms,json=rttMs,proto3" json:"rtt_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlayerState) Reset() {
	*x = PlayerState{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlayerState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlayerState) ProtoMessage() {}

func (x *PlayerState) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlayerState.ProtoReflect.Descriptor instead.
func (*PlayerState) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{12}
}

func (x *PlayerState) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *PlayerState) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *PlayerState) GetStation() int32 {
	if x != nil {
		return x.Station
	}
	return 0
}

func (x *PlayerState) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *PlayerState) GetRttMs() int32 {
	if x != nil {
		return x.RttMs
	}
	return 0
}

type ServerState struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FrameId       int32                  `protobuf:"varint,1,opt,name=frame_id,json=frameId,proto3" json:"frame_id,omitempty"`
	SimTime       float64                `protobuf:"fixed64,2,opt,name=sim_time,json=simTime,proto3" json:"sim_time,omitempty"`
	Props         []*PropState           `protobuf:"bytes,3,rep,name=props,proto3" json:"props,omitempty"`
	Players       []*PlayerState         `protobuf:"bytes,4,rep,name=players,proto3" json:"players,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServerState) Reset() {
	*x = ServerState{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerState) ProtoMessage() {}

func (x *ServerState) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerState.ProtoReflect.Descriptor instead.
func (*ServerState) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{13}
}

func (x *ServerState) GetFrameId() int32 {
	if x != nil {
		return x.FrameId
	}
	return 0
}

func (x *ServerState) GetSimTime() float64 {
	if x != nil {
		return x.SimTime
	}
	return 0
}

func (x *ServerState) GetProps() []*PropState {
	if x != nil {
		return x.Props
	}
	return nil
}

func (x *ServerState) GetPlayers() []*PlayerState {
	if x != nil {
		return x.Players
	}
	return nil
}

type PlayerLeave struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlayerId      int32                  `protobuf:"varint,1,opt,name=player_id,json=playerId,proto3" json:"player_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlayerLeave) Reset() {
	*x = PlayerLeave{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlayerLeave) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlayerLeave) ProtoMessage() {}

func (x *PlayerLeave) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlayerLeave.ProtoReflect.Descriptor instead.
func (*PlayerLeave) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{14}
}

func (x *PlayerLeave) GetPlayerId() int32 {
	if x != nil {
		return x.PlayerId
	}
	return 0
}

type ArenaReset struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GameSeed      int64                  `protobuf:"varint,1,opt,name=game_seed,json=gameSeed,proto3" json:"game_seed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ArenaReset) Reset() {
	*x = ArenaReset{}
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ArenaReset) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ArenaReset) ProtoMessage() {}

func (x *ArenaReset) ProtoReflect() protoreflect.Message {
	mi := &file_propstrike_v1_propstrike_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ArenaReset.ProtoReflect.Descriptor instead.
func (*ArenaReset) Descriptor() ([]byte, []int) {
	return file_propstrike_v1_propstrike_proto_rawDescGZIP(), []int{15}
}

func (x *ArenaReset) GetGameSeed() int64 {
	if x != nil {
		return x.GameSeed
	}
	return 0
}

var File_propstrike_v1_propstrike_proto protoreflect.FileDescriptor

var file_propstrike_v1_propstrike_proto_rawDesc = []byte{
	0x0a, 0x1e, 0x70, 0x72, 0x6f, 0x70, 0x73, 0x74, 0x72, 0x69, 0x6b, 0x65, 0x2f, 0x76, 0x31, 0x2f,
	0x70, 0x72, 0x6f, 0x70, 0x73, 0x74, 0x72, 0x69, 0x6b, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x12, 0x0d, 0x70, 0x72, 0x6f, 0x70, 0x73, 0x74, 0x72, 0x69, 0x6b, 0x65, 0x2e, 0x76, 0x31, 0x22,
	0x52, 0x0a, 0x06, 0x50, 0x61, 0x63, 0x6b, 0x65, 0x74, 0x12, 0x2e, 0x0a, 0x04, 0x74, 0x79, 0x70,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1a, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x73, 0x74,
	0x72, 0x69, 0x6b, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x54,
	0x79, 0x70, 0x65, 0x52, 0x04, 0x74, 0x79, 0x70, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x70, 0x61, 0x79,
	0x6c, 0x6f, 0x61, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0c, 0x52, 0x07, 0x70, 0x61, 0x79, 0x6c,
	0x6f, 0x61, 0x64, 0x22, 0x33, 0x0a, 0x07, 0x56, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x33, 0x12, 0x0c,
	0x0a, 0x01, 0x78, 0x18, 0x01, 0x20, 0x01, 0x28, 0x01, 0x52, 0x01, 0x78, 0x12, 0x0c, 0x0a, 0x01,
	0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x01, 0x79, 0x12, 0x0c, 0x0a, 0x01, 0x7a, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x01, 0x7a, 0x22, 0x44, 0x0a, 0x0a, 0x51, 0x75, 0x61, 0x74,
	0x65, 0x72, 0x6e, 0x69, 0x6f, 0x6e, 0x12, 0x0c, 0x0a, 0x01, 0x77, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x01, 0x52, 0x01, 0x77, 0x12, 0x0c, 0x0a, 0x01, 0x78, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52,
	0x01, 0x78, 0x12, 0x0c, 0x0a, 0x01, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x01, 0x79,
	0x12, 0x0c, 0x0a, 0x01, 0x7a, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x01, 0x7a, 0x22, 0x2e,
	0x0a, 0x0b, 0x4a, 0x6f, 0x69, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1f, 0x0a,
	0x0b, 0x70, 0x6c, 0x61, 0x79, 0x65, 0x72, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0a, 0x70, 0x6c, 0x61, 0x79, 0x65, 0x72, 0x4e, 0x61, 0x6d, 0x65, 0x22, 0xd8,
	0x01, 0x0a, 0x0c, 0x4a, 0x6f, 0x69, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x18, 0x0a, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08,
	0x52, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x12, 0x1b, 0x0a, 0x09, 0x70, 0x6c, 0x61,
	0x79, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x08, 0x70, 0x6c,
	0x61, 0x79, 0x65, 0x72, 0x49, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x5f,
	0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x65,
	0x72, 0x72, 0x6f, 0x72, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x10, 0x0a, 0x03, 0x74,
	0x70, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52, 0x03, 0x74, 0x70, 0x73, 0x12, 0x1b, 0x0a,
	0x09, 0x67, 0x61, 0x6d, 0x65, 0x5f, 0x73, 0x65, 0x65, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x08, 0x67, 0x61, 0x6d, 0x65, 0x53, 0x65, 0x65, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x73, 0x65,
	0x73, 0x73, 0x69, 0x6f, 0x6e, 0x5f, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0c, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x12,
	0x18, 0x0a, 0x07, 0x73, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x07, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x07, 0x73, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x22, 0x8a, 0x01, 0x0a, 0x0b, 0x46, 0x69,
	0x72, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x73, 0x65, 0x71,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x03, 0x73, 0x65, 0x71, 0x12, 0x2f, 0x0a, 0x07, 0x61,
	0x69, 0x6d, 0x5f, 0x64, 0x69, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x16, 0x2e, 0x70,
	0x72, 0x6f, 0x70, 0x73, 0x74, 0x72, 0x69, 0x6b, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x65, 0x63,
	0x74, 0x6f, 0x72, 0x33, 0x52, 0x06, 0x61, 0x69, 0x6d, 0x44, 0x69, 0x72, 0x12, 0x1f, 0x0a, 0x0b,
	0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x0a, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x17, 0x0a,
	0x07, 0x6c, 0x65, 0x72, 0x70, 0x5f, 0x6d, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52, 0x06,
	0x6c, 0x65, 0x72, 0x70, 0x4d, 0x73, 0x22, 0x91, 0x02, 0x0a, 0x0a, 0x46, 0x69, 0x72, 0x65, 0x52,
	0x65, 0x73, 0x75, 0x6c, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x73, 0x65, 0x71, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x05, 0x52, 0x03, 0x73, 0x65, 0x71, 0x12, 0x10, 0x0a, 0x03, 0x68, 0x69, 0x74, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x03, 0x68, 0x69, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x70, 0x72, 0x6f,
	0x70, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x06, 0x70, 0x72, 0x6f, 0x70,
	0x49, 0x64, 0x12, 0x37, 0x0a, 0x0a, 0x70, 0x72, 0x6f, 0x70, 0x5f, 0x63, 0x6c, 0x61, 0x73, 0x73,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x18, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x73, 0x74, 0x72,
	0x69, 0x6b, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x6f, 0x70, 0x43, 0x6c, 0x61, 0x73, 0x73,
	0x52, 0x09, 0x70, 0x72, 0x6f, 0x70, 0x43, 0x6c, 0x61, 0x73, 0x73, 0x12, 0x1a, 0x0a, 0x08, 0x64,
	0x69, 0x73, 0x74, 0x61, 0x6e, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x01, 0x52, 0x08, 0x64,
	0x69, 0x73, 0x74, 0x61, 0x6e, 0x63, 0x65, 0x12, 0x1c, 0x0a, 0x09, 0x64, 0x65, 0x73, 0x74, 0x72,
	0x6f, 0x79, 0x65, 0x64, 0x18, 0x06, 0x20, 0x01, 0x28, 0x08, 0x52, 0x09, 0x64, 0x65, 0x73, 0x74,
	0x72, 0x6f, 0x79, 0x65, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x18, 0x07,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x72,
	0x65, 0x77, 0x69, 0x6e, 0x64, 0x5f, 0x6d, 0x73, 0x18, 0x08, 0x20, 0x01, 0x28, 0x05, 0x52, 0x08,
	0x72, 0x65, 0x77, 0x69, 0x6e, 0x64, 0x4d, 0x73, 0x12, 0x20, 0x0a, 0x0b, 0x63, 0x6f, 0x6d, 0x70,
	0x65, 0x6e, 0x73, 0x61, 0x74, 0x65, 0x64, 0x18, 0x09, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x63,
	0x6f, 0x6d, 0x70, 0x65, 0x6e, 0x73, 0x61, 0x74, 0x65, 0x64, 0x22, 0x27, 0x0a, 0x04, 0x50, 0x69,
	0x6e, 0x67, 0x12, 0x1f, 0x0a, 0x0b, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x74, 0x69, 0x6d,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0a, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x54,
	0x69, 0x6d, 0x65, 0x22, 0x6b, 0x0a, 0x04, 0x50, 0x6f, 0x6e, 0x67, 0x12, 0x1f, 0x0a, 0x0b, 0x63,
	0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x0a, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x1f, 0x0a, 0x0b,
	0x73, 0x65, 0x72, 0x76, 0x65, 0x72, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x0a, 0x73, 0x65, 0x72, 0x76, 0x65, 0x72, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x21, 0x0a,
	0x0c, 0x73, 0x65, 0x72, 0x76, 0x65, 0x72, 0x5f, 0x66, 0x72, 0x61, 0x6d, 0x65, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x0b, 0x73, 0x65, 0x72, 0x76, 0x65, 0x72, 0x46, 0x72, 0x61, 0x6d, 0x65,
	0x22, 0x37, 0x0a, 0x10, 0x52, 0x65, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x23, 0x0a, 0x0d, 0x73, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x5f,
	0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x73, 0x65, 0x73,
	0x73, 0x69, 0x6f, 0x6e, 0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x22, 0x38, 0x0a, 0x0b, 0x50, 0x72, 0x65,
	0x66, 0x73, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x12, 0x29, 0x0a, 0x10, 0x6c, 0x61, 0x67, 0x5f,
	0x63, 0x6f, 0x6d, 0x70, 0x65, 0x6e, 0x73, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x0f, 0x6c, 0x61, 0x67, 0x43, 0x6f, 0x6d, 0x70, 0x65, 0x6e, 0x73, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x22, 0x9b, 0x02, 0x0a, 0x09, 0x50, 0x72, 0x6f, 0x70, 0x53, 0x74, 0x61, 0x74,
	0x65, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x02, 0x69,
	0x64, 0x12, 0x2e, 0x0a, 0x05, 0x63, 0x6c, 0x61, 0x73, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0e,
	0x32, 0x18, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x73, 0x74, 0x72, 0x69, 0x6b, 0x65, 0x2e, 0x76, 0x31,
	0x2e, 0x50, 0x72, 0x6f, 0x70, 0x43, 0x6c, 0x61, 0x73, 0x73, 0x52, 0x05, 0x63, 0x6c, 0x61, 0x73,
	0x73, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x6c, 0x69, 0x76, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x08,
	0x52, 0x05, 0x61, 0x6c, 0x69, 0x76, 0x65, 0x12, 0x32, 0x0a, 0x08, 0x70, 0x6f, 0x73, 0x69, 0x74,
	0x69, 0x6f, 0x6e, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x16, 0x2e, 0x70, 0x72, 0x6f, 0x70,
	0x73, 0x74, 0x72, 0x69, 0x6b, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x65, 0x63, 0x74, 0x6f, 0x72,
	0x33, 0x52, 0x08, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x35, 0x0a, 0x08, 0x72,
	0x6f, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x19, 0x2e,
	0x70, 0x72, 0x6f, 0x70, 0x73, 0x74, 0x72, 0x69, 0x6b, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x51, 0x75,
	0x61, 0x74, 0x65, 0x72, 0x6e, 0x69, 0x6f, 0x6e, 0x52, 0x08, 0x72, 0x6f, 0x74, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x12, 0x39, 0x0a, 0x0c, 0x68, 0x61, 0x6c, 0x66, 0x5f, 0x65, 0x78, 0x74, 0x65, 0x6e,
	0x74, 0x73, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x16, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x73,
	0x74, 0x72, 0x69, 0x6b, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x33,
	0x52, 0x0b, 0x68, 0x61, 0x6c, 0x66, 0x45, 0x78, 0x74, 0x65, 0x6e, 0x74, 0x73, 0x12, 0x12, 0x0a,
	0x04, 0x68, 0x69, 0x74, 0x73, 0x18, 0x07, 0x20, 0x01, 0x28, 0x05, 0x52, 0x04, 0x68, 0x69, 0x74,
	0x73, 0x22, 0x78, 0x0a, 0x0b, 0x50, 0x6c, 0x61, 0x79, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x65,
	0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x02, 0x69, 0x64,
	0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04,
	0x6e, 0x61, 0x6d, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x07, 0x73, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x14,
	0x0a, 0x05, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x73,
	0x63, 0x6f, 0x72, 0x65, 0x12, 0x15, 0x0a, 0x06, 0x72, 0x74, 0x74, 0x5f, 0x6d, 0x73, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x72, 0x74, 0x74, 0x4d, 0x73, 0x22, 0xa9, 0x01, 0x0a, 0x0b,
	0x53, 0x65, 0x72, 0x76, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x65, 0x12, 0x19, 0x0a, 0x08, 0x66,
	0x72, 0x61, 0x6d, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x07, 0x66,
	0x72, 0x61, 0x6d, 0x65, 0x49, 0x64, 0x12, 0x19, 0x0a, 0x08, 0x73, 0x69, 0x6d, 0x5f, 0x74, 0x69,
	0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x07, 0x73, 0x69, 0x6d, 0x54, 0x69, 0x6d,
	0x65, 0x12, 0x2e, 0x0a, 0x05, 0x70, 0x72, 0x6f, 0x70, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x0b,
	0x32, 0x18, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x73, 0x74, 0x72, 0x69, 0x6b, 0x65, 0x2e, 0x76, 0x31,
	0x2e, 0x50, 0x72, 0x6f, 0x70, 0x53, 0x74, 0x61, 0x74, 0x65, 0x52, 0x05, 0x70, 0x72, 0x6f, 0x70,
	0x73, 0x12, 0x34, 0x0a, 0x07, 0x70, 0x6c, 0x61, 0x79, 0x65, 0x72, 0x73, 0x18, 0x04, 0x20, 0x03,
	0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x73, 0x74, 0x72, 0x69, 0x6b, 0x65, 0x2e,
	0x76, 0x31, 0x2e, 0x50, 0x6c, 0x61, 0x79, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x65, 0x52, 0x07,
	0x70, 0x6c, 0x61, 0x79, 0x65, 0x72, 0x73, 0x22, 0x2a, 0x0a, 0x0b, 0x50, 0x6c, 0x61, 0x79, 0x65,
	0x72, 0x4c, 0x65, 0x61, 0x76, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x70, 0x6c, 0x61, 0x79, 0x65, 0x72,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x08, 0x70, 0x6c, 0x61, 0x79, 0x65,
	0x72, 0x49, 0x64, 0x22, 0x29, 0x0a, 0x0a, 0x41, 0x72, 0x65, 0x6e, 0x61, 0x52, 0x65, 0x73, 0x65,
	0x74, 0x12, 0x1b, 0x0a, 0x09, 0x67, 0x61, 0x6d, 0x65, 0x5f, 0x73, 0x65, 0x65, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x67, 0x61, 0x6d, 0x65, 0x53, 0x65, 0x65, 0x64, 0x2a, 0xf4,
	0x02, 0x0a, 0x0b, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1c,
	0x0a, 0x18, 0x4d, 0x45, 0x53, 0x53, 0x41, 0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x55,
	0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x1d, 0x0a, 0x19,
	0x4d, 0x45, 0x53, 0x53, 0x41, 0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x4a, 0x4f, 0x49,
	0x4e, 0x5f, 0x52, 0x45, 0x51, 0x55, 0x45, 0x53, 0x54, 0x10, 0x01, 0x12, 0x1e, 0x0a, 0x1a, 0x4d,
	0x45, 0x53, 0x53, 0x41, 0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x4a, 0x4f, 0x49, 0x4e,
	0x5f, 0x52, 0x45, 0x53, 0x50, 0x4f, 0x4e, 0x53, 0x45, 0x10, 0x02, 0x12, 0x1d, 0x0a, 0x19, 0x4d,
	0x45, 0x53, 0x53, 0x41, 0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x46, 0x49, 0x52, 0x45,
	0x5f, 0x52, 0x45, 0x51, 0x55, 0x45, 0x53, 0x54, 0x10, 0x03, 0x12, 0x1c, 0x0a, 0x18, 0x4d, 0x45,
	0x53, 0x53, 0x41, 0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x46, 0x49, 0x52, 0x45, 0x5f,
	0x52, 0x45, 0x53, 0x55, 0x4c, 0x54, 0x10, 0x04, 0x12, 0x15, 0x0a, 0x11, 0x4d, 0x45, 0x53, 0x53,
	0x41, 0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x50, 0x49, 0x4e, 0x47, 0x10, 0x05, 0x12,
	0x15, 0x0a, 0x11, 0x4d, 0x45, 0x53, 0x53, 0x41, 0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f,
	0x50, 0x4f, 0x4e, 0x47, 0x10, 0x06, 0x12, 0x22, 0x0a, 0x1e, 0x4d, 0x45, 0x53, 0x53, 0x41, 0x47,
	0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x52, 0x45, 0x43, 0x4f, 0x4e, 0x4e, 0x45, 0x43, 0x54,
	0x5f, 0x52, 0x45, 0x51, 0x55, 0x45, 0x53, 0x54, 0x10, 0x07, 0x12, 0x1d, 0x0a, 0x19, 0x4d, 0x45,
	0x53, 0x53, 0x41, 0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x50, 0x52, 0x45, 0x46, 0x53,
	0x5f, 0x55, 0x50, 0x44, 0x41, 0x54, 0x45, 0x10, 0x08, 0x12, 0x1d, 0x0a, 0x19, 0x4d, 0x45, 0x53,
	0x53, 0x41, 0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x53, 0x45, 0x52, 0x56, 0x45, 0x52,
	0x5f, 0x53, 0x54, 0x41, 0x54, 0x45, 0x10, 0x09, 0x12, 0x1d, 0x0a, 0x19, 0x4d, 0x45, 0x53, 0x53,
	0x41, 0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x50, 0x4c, 0x41, 0x59, 0x45, 0x52, 0x5f,
	0x4c, 0x45, 0x41, 0x56, 0x45, 0x10, 0x0a, 0x12, 0x1c, 0x0a, 0x18, 0x4d, 0x45, 0x53, 0x53, 0x41,
	0x47, 0x45, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x41, 0x52, 0x45, 0x4e, 0x41, 0x5f, 0x52, 0x45,
	0x53, 0x45, 0x54, 0x10, 0x0b, 0x2a, 0x6a, 0x0a, 0x09, 0x50, 0x72, 0x6f, 0x70, 0x43, 0x6c, 0x61,
	0x73, 0x73, 0x12, 0x1a, 0x0a, 0x16, 0x50, 0x52, 0x4f, 0x50, 0x5f, 0x43, 0x4c, 0x41, 0x53, 0x53,
	0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x14,
	0x0a, 0x10, 0x50, 0x52, 0x4f, 0x50, 0x5f, 0x43, 0x4c, 0x41, 0x53, 0x53, 0x5f, 0x43, 0x52, 0x41,
	0x54, 0x45, 0x10, 0x01, 0x12, 0x15, 0x0a, 0x11, 0x50, 0x52, 0x4f, 0x50, 0x5f, 0x43, 0x4c, 0x41,
	0x53, 0x53, 0x5f, 0x42, 0x41, 0x52, 0x52, 0x45, 0x4c, 0x10, 0x02, 0x12, 0x14, 0x0a, 0x10, 0x50,
	0x52, 0x4f, 0x50, 0x5f, 0x43, 0x4c, 0x41, 0x53, 0x53, 0x5f, 0x44, 0x45, 0x43, 0x4f, 0x59, 0x10,
	0x03, 0x42, 0x29, 0x5a, 0x27, 0x70, 0x72, 0x6f, 0x70, 0x73, 0x74, 0x72, 0x69, 0x6b, 0x65, 0x2f,
	0x61, 0x70, 0x69, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x70, 0x72, 0x6f, 0x70, 0x73, 0x74, 0x72, 0x69,
	0x6b, 0x65, 0x2f, 0x76, 0x31, 0x3b, 0x67, 0x61, 0x6d, 0x65, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_propstrike_v1_propstrike_proto_rawDescOnce sync.Once
	file_propstrike_v1_propstrike_proto_rawDescData = file_propstrike_v1_propstrike_proto_rawDesc
)

func file_propstrike_v1_propstrike_proto_rawDescGZIP() []byte {
	file_propstrike_v1_propstrike_proto_rawDescOnce.Do(func() {
		file_propstrike_v1_propstrike_proto_rawDescData = protoimpl.X.CompressGZIP(file_propstrike_v1_propstrike_proto_rawDescData)
	})
	return file_propstrike_v1_propstrike_proto_rawDescData
}

var file_propstrike_v1_propstrike_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_propstrike_v1_propstrike_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_propstrike_v1_propstrike_proto_goTypes = []any{
	(MessageType)(0),         // 0: propstrike.v1.MessageType
	(PropClass)(0),           // 1: propstrike.v1.PropClass
	(*Packet)(nil),           // 2: propstrike.v1.Packet
	(*Vector3)(nil),          // 3: propstrike.v1.Vector3
	(*Quaternion)(nil),       // 4: propstrike.v1.Quaternion
	(*JoinRequest)(nil),      // 5: propstrike.v1.JoinRequest
	(*JoinResponse)(nil),     // 6: propstrike.v1.JoinResponse
	(*FireRequest)(nil),      // 7: propstrike.v1.FireRequest
	(*FireResult)(nil),       // 8: propstrike.v1.FireResult
	(*Ping)(nil),             // 9: propstrike.v1.Ping
	(*Pong)(nil),             // 10: propstrike.v1.Pong
	(*ReconnectRequest)(nil), // 11: propstrike.v1.ReconnectRequest
	(*PrefsUpdate)(nil),      // 12: propstrike.v1.PrefsUpdate
	(*PropState)(nil),        // 13: propstrike.v1.PropState
	(*PlayerState)(nil),      // 14: propstrike.v1.PlayerState
	(*ServerState)(nil),      // 15: propstrike.v1.ServerState
	(*PlayerLeave)(nil),      // 16: propstrike.v1.PlayerLeave
	(*ArenaReset)(nil),       // 17: propstrike.v1.ArenaReset
}
var file_propstrike_v1_propstrike_proto_depIdxs = []int32{
	0,  // 0: propstrike.v1.Packet.type:type_name -> propstrike.v1.MessageType
	3,  // 1: propstrike.v1.FireRequest.aim_dir:type_name -> propstrike.v1.Vector3
	1,  // 2: propstrike.v1.FireResult.prop_class:type_name -> propstrike.v1.PropClass
	1,  // 3: propstrike.v1.PropState.class:type_name -> propstrike.v1.PropClass
	3,  // 4: propstrike.v1.PropState.position:type_name -> propstrike.v1.Vector3
	4,  // 5: propstrike.v1.PropState.rotation:type_name -> propstrike.v1.Quaternion
	3,  // 6: propstrike.v1.PropState.half_extents:type_name -> propstrike.v1.Vector3
	13, // 7: propstrike.v1.ServerState.props:type_name -> propstrike.v1.PropState
	14, // 8: propstrike.v1.ServerState.players:type_name -> propstrike.v1.PlayerState
	9,  // [9:9] is the sub-list for method output_type
	9,  // [9:9] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_propstrike_v1_propstrike_proto_init() }
func file_propstrike_v1_propstrike_proto_init() {
	if File_propstrike_v1_propstrike_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_propstrike_v1_propstrike_proto_rawDesc,
			NumEnums:      2,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_propstrike_v1_propstrike_proto_goTypes,
		DependencyIndexes: file_propstrike_v1_propstrike_proto_depIdxs,
		EnumInfos:         file_propstrike_v1_propstrike_proto_enumTypes,
		MessageInfos:      file_propstrike_v1_propstrike_proto_msgTypes,
	}.Build()
	File_propstrike_v1_propstrike_proto = out.File
	file_propstrike_v1_propstrike_proto_rawDesc = nil
	file_propstrike_v1_propstrike_proto_goTypes = nil
	file_propstrike_v1_propstrike_proto_depIdxs = nil
}
