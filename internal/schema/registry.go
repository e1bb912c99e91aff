package schema

import (
	"sort"

	"github.com/replicore/netdecode/internal/propval"
)

type propSpec struct {
	key    string
	name   string
	kind   propval.Kind
	params propval.Params
}

func classTable(name string, specs []propSpec) *ClassDescriptor {
	props := make(map[uint32]PropertyDescriptor, len(specs))
	idSize := 6
	for i, s := range specs {
		if i == 0 {
			idSize = len(s.key)
		}
		props[BitsToKey(s.key)] = PropertyDescriptor{Name: s.name, Kind: s.kind, Params: s.params}
	}
	return &ClassDescriptor{Name: name, Properties: props, IDSize: idSize}
}

func emptyClass(name string) *ClassDescriptor {
	return &ClassDescriptor{Name: name, Properties: map[uint32]PropertyDescriptor{}, IDSize: 6}
}

func sized(n int) propval.Params { return propval.Params{Size: n} }

func choiceTable(pairs ...string) map[uint32]string {
	m := make(map[uint32]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[BitsToKey(pairs[i])] = pairs[i+1]
	}
	return m
}

func member(name string, kind propval.Kind, params propval.Params) propval.Member {
	return propval.Member{Name: name, Kind: kind, Params: params}
}

// Registry is the read-only, process-wide class table. A session never
// mutates it; unknown class keys are instead recorded in a per-session
// overlay (see internal/session) so concurrent sessions never race on this
// table (spec.md §3, "class_registry ... immutable").
type Registry struct {
	classes map[uint32]*ClassDescriptor
	root    *ClassDescriptor
}

// Lookup finds a class descriptor by its wire key, after normalization.
func (r *Registry) Lookup(key uint32) (*ClassDescriptor, bool) {
	d, ok := r.classes[NormalizeClassKey(key)]
	return d, ok
}

// Root returns the implicit class bound to channel 0 (FirstServerObject),
// which never carries a 32-bit class prefix on the wire.
func (r *Registry) Root() *ClassDescriptor { return r.root }

// Size reports how many classes the registry carries, used by the unknown-
// class naming scheme ("unknown<N>") to keep synthetic names disjoint from
// the static table's size at session start.
func (r *Registry) Size() int { return len(r.classes) }

// Classes returns every class descriptor in the table, sorted by wire key
// for deterministic listing (used by the describe-schema command).
func (r *Registry) Classes() []*ClassDescriptor {
	keys := make([]uint32, 0, len(r.classes))
	for k := range r.classes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]*ClassDescriptor, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		c := r.classes[k]
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		out = append(out, c)
	}
	return out
}

var shared = buildRegistry()

// Shared returns the single process-wide registry instance.
func Shared() *Registry { return shared }

func buildRegistry() *Registry {
	firstServerObject := classTable("FirstServerObject", []propSpec{
		{"10000000", "mysteryproperty3", propval.KindMystery3, propval.Params{}},
		{"11000000", "mysteryproperty5", propval.KindStruct, propval.Params{Members: []propval.Member{
			member("unknown", propval.KindInt32, propval.Params{}),
			member("unknown2", propval.KindString, propval.Params{}),
		}}},
		{"00100000", "mysteryproperty4", propval.KindStruct, propval.Params{Members: []propval.Member{
			member("unknown", propval.KindSizedBits, sized(88)),
			member("server url", propval.KindString, propval.Params{}),
		}}},
		{"11100000", "mysteryproperty1", propval.KindMystery1, propval.Params{}},
		{"11010000", "mysteryproperty2", propval.KindMystery2, propval.Params{}},
	})

	firstClientObject := classTable("FirstClientObject", []propSpec{
		{"000100", "prop8", propval.KindSizedBits, sized(162)},
	})

	trInventoryManager := classTable("TrInventoryManager", []propSpec{
		{"01111", "Instigator", propval.KindSizedBits, sized(10)},
		{"11111", "Owner", propval.KindSizedBits, sized(10)},
		{"10101", "InventoryChain", propval.KindSizedBits, sized(11)},
	})

	trPlayerPawn := classTable("TrPlayerPawn", []propSpec{
		{"1010000", "bNetOwner", propval.KindBool, propval.Params{}},
		{"1101000", "RemoteRole", propval.KindSizedBits, sized(2)},
		{"1111000", "Owner", propval.KindSizedBits, sized(11)},
		{"1100100", "Rotation", propval.KindSizedBits, sized(11)},
		{"1001100", "InvManager", propval.KindSizedBits, sized(11)},
		{"0111100", "PlayerReplicationInfo", propval.KindSizedBits, sized(11)},
		{"1111100", "HealthMax", propval.KindInt32, propval.Params{}},
		{"0000010", "Health", propval.KindInt32, propval.Params{}},
		{"1000010", "AirControl", propval.KindInt32, propval.Params{}},
		{"0110010", "GroundSpeed", propval.KindInt32, propval.Params{}},
		{"1101010", "bCanSwatTurn", propval.KindBool, propval.Params{}},
		{"0011010", "bSimulateGravity", propval.KindBool, propval.Params{}},
		{"1111010", "Controller", propval.KindSizedBits, sized(11)},
		{"1000110", "CompressedBodyMatColor", propval.KindSizedBits, sized(3)},
		{"0100110", "ClientBodyMatDuration", propval.KindInt32, propval.Params{}},
		{"0101110", "LastTakeHitInfo", propval.KindSizedBits, sized(139)},
		{"1001001", "CurrentWeaponAttachmentClass", propval.KindInt32, propval.Params{}},
		{"1100101", "r_fPowerPoolRechargeRate", propval.KindInt32, propval.Params{}},
		{"0010101", "r_fMaxPowerPool", propval.KindInt32, propval.Params{}},
		{"1010101", "r_fCurrentPowerPool", propval.KindInt32, propval.Params{}},
		{"1000011", "r_bDetectedByEnemyScanner", propval.KindBool, propval.Params{}},
		{"1100011", "r_bIsInvulnerable", propval.KindSizedBits, sized(1)},
		{"1110011", "r_bIsSkiing", propval.KindSizedBits, sized(1)},
		{"0111011", "RPC ClientUpdateHUDHealth", propval.KindParams, propval.Params{Members: []propval.Member{
			member("NewHealth", propval.KindInt32, propval.Params{}),
			member("NewHealthMax", propval.KindInt32, propval.Params{}),
		}}},
		{"1111011", "RPC PlayHardLandingEffect", propval.KindSizedBits, sized(53)},
		{"1100111", "r_nFlashReloadSecondaryWeapon", propval.KindSizedBits, sized(8)},
	})

	trDevice := classTable("TrDevice", []propSpec{
		{"100001", "r_AmmoCount", propval.KindSizedBits, sized(64)},
		{"010001", "r_bIsReloading", propval.KindBool, propval.Params{}},
		{"110001", "r_bReadyToFire", propval.KindBool, propval.Params{}},
		{"001001", "r_eEquipAt", propval.KindSizedBits, sized(4)},
		{"111101", "Owner", propval.KindSizedBits, sized(10)},
		{"101011", "InvManager", propval.KindSizedBits, sized(10)},
		{"011011", "Inventory", propval.KindSizedBits, sized(10)},
	})

	trRadarStation := classTable("TrRadarStation", []propSpec{
		{"000111", "r_bReset", propval.KindSizedBits, sized(7)},
		{"010111", "r_ShieldHealth", propval.KindSizedBits, sized(31)},
	})

	trInventoryStation := classTable("TrInventoryStation", []propSpec{
		{"000111", "r_bReset", propval.KindSizedBits, sized(7)},
	})

	trRepairStation := classTable("TrRepairStation", []propSpec{
		{"000111", "r_bReset", propval.KindSizedBits, sized(7)},
	})

	trPowerGenerator := classTable("TrPowerGenerator", []propSpec{
		{"111110", "r_MaxHealth", propval.KindSizedBits, sized(31)},
	})

	trPlayerController := classTable("TrPlayerController", []propSpec{
		{"01000000", "bCollideWorld", propval.KindSizedBits, sized(2)},
		{"11000000", "RPC ClientMatchOver", propval.KindParams, propval.Params{Members: []propval.Member{
			member("unknown", propval.KindFlag, propval.Params{}),
			member("Winner", propval.KindInt32, propval.Params{}),
			member("WinnerName", propval.KindString, propval.Params{}),
		}}},
		{"00100000", "!!!!!!!!!INTERESTING Unknown INTERESTING!!!!!!!!!", propval.KindSizedBits, sized(10)},
		{"00110000", "RPC ClientSetLastDamagerInfo", propval.KindSizedBits, sized(35)},
		{"10101000", "PlayerReplicationInfo", propval.KindSizedBits, sized(11)},
		{"01100000", "RPC UpdateMatchCountdown", propval.KindParams, propval.Params{Members: []propval.Member{
			member("unknown", propval.KindFlag, propval.Params{}),
			member("Seconds", propval.KindInt32, propval.Params{}),
		}}},
		{"01101000", "Pawn", propval.KindSizedBits, sized(11)},
		{"00011000", "RPC ClientSetRotation", propval.KindSizedBits, sized(2)},
		{"01011000", "RPC ClientSwitchToBestWeapon", propval.KindSizedBits, sized(1)},
		{"00100100", "RPC ClientGotoState", propval.KindParams, propval.Params{Members: []propval.Member{
			member("NewState", propval.KindSizedBits, sized(11)),
			member("NewLabel", propval.KindSizedBits, sized(11)),
		}}},
		{"01100100", "RPC GivePawn", propval.KindParams, propval.Params{Members: []propval.Member{
			member("NewPawn", propval.KindSizedBits, sized(11)),
		}}},
		{"10010100", "RPC ReceiveLocalizedMessage", propval.KindParams, propval.Params{Members: []propval.Member{
			member("Message", propval.KindInt32, propval.Params{}),
			member("Switch", propval.KindInt32, propval.Params{}),
			member("RelatedPRI_1", propval.KindSizedBits, sized(11)),
			member("RelatedPRI_2", propval.KindInt32, propval.Params{}),
			member("OptionalObject", propval.KindSizedBits, sized(11)),
		}}},
		{"11011100", "RPC VeryShortClientAdjustPosition", propval.KindParams, propval.Params{Members: []propval.Member{
			member("TimeStamp", propval.KindFloat32, propval.Params{}),
			member("NewLocX", propval.KindFloat32, propval.Params{}),
			member("NewLocY", propval.KindFloat32, propval.Params{}),
			member("NewLocZ", propval.KindFloat32, propval.Params{}),
			member("newBase", propval.KindSizedBits, sized(32)),
		}}},
		{"00111100", "RPC ShortClientAdjustPosition", propval.KindParams, propval.Params{Members: []propval.Member{
			member("TimeStamp", propval.KindFloat32, propval.Params{}),
			member("newState", propval.KindSizedBits, sized(11)),
			member("newPhysics", propval.KindSizedBits, sized(4)),
			member("NewLocX", propval.KindFloat32, propval.Params{}),
			member("NewLocY", propval.KindFloat32, propval.Params{}),
			member("NewLocZ", propval.KindFloat32, propval.Params{}),
			member("newBase", propval.KindSizedBits, sized(32)),
		}}},
		{"01111100", "RPC ClientAckGoodMove", propval.KindParams, propval.Params{Members: []propval.Member{
			member("TimeStamp", propval.KindFloat32, propval.Params{}),
		}}},
		{"11111100", "RPC ClientAdjustPosition", propval.KindParams, propval.Params{Members: []propval.Member{
			member("TimeStamp", propval.KindFloat32, propval.Params{}),
			member("newState", propval.KindSizedBits, sized(11)),
			member("newPhysics", propval.KindSizedBits, sized(4)),
			member("NewLocX", propval.KindFloat32, propval.Params{}),
			member("NewLocY", propval.KindFloat32, propval.Params{}),
			member("NewLocZ", propval.KindFloat32, propval.Params{}),
			member("NewVelX", propval.KindFloat32, propval.Params{}),
			member("NewVelY", propval.KindFloat32, propval.Params{}),
			member("NewVelZ", propval.KindFloat32, propval.Params{}),
			member("newBase", propval.KindSizedBits, sized(32)),
		}}},
		{"00110010", "RPC ClientGameEnded", propval.KindSizedBits, sized(2)},
		{"10110010", "RPC ClientSetViewTarget", propval.KindSizedBits, sized(81)},
		{"11101110", "RPC ClientEndOnlineGame", propval.KindFlag, propval.Params{}},
		{"01001001", "RPC PlayStartupMessage", propval.KindParams, propval.Params{Members: []propval.Member{
			member("StartupStage", propval.KindSizedBits, sized(8)),
		}}},
		{"11001001", "RPC ClientPlayTakeHit", propval.KindSizedBits, sized(43)},
		{"00101011", "RPC ClientEndTeamSelect", propval.KindParams, propval.Params{Members: []propval.Member{
			member("RequestedTeamNum", propval.KindInt32, propval.Params{}),
		}}},
		{"10111101", "r_nCurrentCredits", propval.KindSizedBits, sized(32)},
		{"01000011", "r_bNeedLoadout", propval.KindBool, propval.Params{}},
		{"11000011", "r_bNeedTeam", propval.KindBool, propval.Params{}},
		{"11100011", "RPC ClientSeekingMissileTargetingSelfEvent", propval.KindParams, propval.Params{Members: []propval.Member{
			member("EventSwitch", propval.KindInt32, propval.Params{}),
		}}},
	})

	trBaseTurret := classTable("TrBaseTurret", []propSpec{
		{"010001", "r_TargetPawn", propval.KindSizedBits, sized(11)},
		{"110001", "r_FlashCount", propval.KindSizedBits, sized(8)},
		{"000111", "r_bReset", propval.KindSizedBits, sized(7)},
		{"010111", "r_ShieldHealth", propval.KindSizedBits, sized(31)},
	})

	trProjBaseTurret := classTable("TrProj_BaseTurret", []propSpec{
		{"011100", "Rotation", propval.KindSizedBits, sized(18)},
		{"000001", "Velocity", propval.KindSizedBits, sized(42)},
	})

	trProjSpinfusor := classTable("TrProj_Spinfusor", []propSpec{
		{"10000", "bCollideActors", propval.KindBool, propval.Params{}},
		{"11100", "bTearOff", propval.KindBool, propval.Params{}},
		{"10110", "Base", propval.KindSizedBits, sized(31)},
		{"10011", "r_vSpawnLocation", propval.KindSizedBits, sized(52)},
	})

	trDroppedPickup := classTable("TrDroppedPickup", []propSpec{
		{"101101", "InventoryClass", propval.KindSizedBits, sized(31)},
		{"011101", "Base", propval.KindSizedBits, sized(30)},
		{"110011", "Rotation", propval.KindSizedBits, sized(10)},
		{"101011", "bFadeOut", propval.KindFlag, propval.Params{}},
	})

	trGameReplicationInfo := classTable("TrGameReplicationInfo", []propSpec{
		{"000000", "netflags", propval.KindSizedBits, sized(5)},
		{"011000", "m_Flags", propval.KindSizedBits, sized(20)},
		{"101000", "r_ServerConfig", propval.KindSizedBits, sized(12)},
		{"111000", "FlagReturnTime", propval.KindSizedBits, sized(41)},
		{"011010", "ServerName", propval.KindString, propval.Params{}},
		{"111010", "TimeLimit", propval.KindInt32, propval.Params{}},
		{"000110", "GoalScore", propval.KindInt32, propval.Params{}},
		{"100110", "RemainingMinute", propval.KindInt32, propval.Params{}},
		{"010110", "ElapsedTime", propval.KindInt32, propval.Params{}},
		{"110110", "RemainingTime", propval.KindInt32, propval.Params{}},
		{"101110", "bMatchIsOver", propval.KindBool, propval.Params{}},
		{"111110", "bStopCountDown", propval.KindBool, propval.Params{}},
		{"000001", "GameClass", propval.KindInt32, propval.Params{}},
		{"100001", "MessageOfTheDay", propval.KindString, propval.Params{}},
		{"010001", "RulesString", propval.KindString, propval.Params{}},
		{"001001", "FlagState", propval.KindMultipleChoice, propval.Params{Size: 10, Choices: choiceTable(
			"0000000000", "Enemy flag on stand",
			"0000000001", "Enemy flag taken",
			"0000000011", "Enemy flag dropped",
			"1000000000", "Own flag on stand",
			"1000000001", "Own flag taken",
			"1000000011", "Own flag dropped",
		)}},
		{"111001", "bAllowKeyboardAndMouse", propval.KindBool, propval.Params{}},
		{"010101", "bWarmupRound", propval.KindBool, propval.Params{}},
		{"001101", "MinNetPlayers", propval.KindInt32, propval.Params{}},
		{"101111", "r_nBlip", propval.KindSizedBits, sized(8)},
	})

	trFlagCTF := classTable("TrFlagCTF", []propSpec{
		{"10000", "bCollideActors", propval.KindBool, propval.Params{}},
		{"11000", "bHardAttach", propval.KindBool, propval.Params{}},
		{"00010", "Physics", propval.KindSizedBits, sized(4)},
		{"00001", "Location", propval.KindSizedBits, sized(52)},
		{"10001", "RelativeLocation", propval.KindSizedBits, sized(22)},
		{"11001", "Rotation", propval.KindSizedBits, sized(11)},
		{"00101", "Velocity", propval.KindSizedBits, sized(40)},
		{"10111", "Base", propval.KindSizedBits, sized(10)},
		{"01000", "bCollideWorld", propval.KindBool, propval.Params{}},
		{"01101", "bHome", propval.KindBool, propval.Params{}},
		{"01001", "RelativeRotation", propval.KindSizedBits, sized(27)},
		{"11101", "Team", propval.KindSizedBits, sized(11)},
		{"00011", "HolderPRI", propval.KindSizedBits, sized(11)},
	})

	trPlayerReplicationInfo := classTable("TrPlayerReplicationInfo", []propSpec{
		{"000000", "netflags", propval.KindSizedBits, sized(5)},
		{"000010", "Location", propval.KindSizedBits, sized(51)},
		{"110010", "Rotation", propval.KindSizedBits, sized(10)},
		{"101010", "UniqueId", propval.KindSizedBits, sized(64)},
		{"011010", "Unknown field", propval.KindInt32, propval.Params{}},
		{"110110", "bWaitingPlayer", propval.KindBool, propval.Params{}},
		{"000110", "bBot", propval.KindBool, propval.Params{}},
		{"101110", "bIsSpectator", propval.KindBool, propval.Params{}},
		{"111110", "Team (11 bits)", propval.KindMultipleChoice, propval.Params{Size: 11, Choices: choiceTable(
			"10001000000", "DiamondSword",
			"11110000000", "BloodEagle",
		)}},
		{"000001", "PlayerID", propval.KindInt32, propval.Params{}},
		{"100001", "PlayerName", propval.KindString, propval.Params{}},
		{"110001", "Deaths", propval.KindInt32, propval.Params{}},
		{"001001", "Score", propval.KindInt32, propval.Params{}},
		{"011001", "CharClassInfo", propval.KindInt32, propval.Params{}},
		{"010101", "bHasFlag", propval.KindBool, propval.Params{}},
		{"101101", "r_bSkinId", propval.KindInt32, propval.Params{}},
		{"111101", "r_EquipLevels", propval.KindSizedBits, sized(48)},
		{"000011", "r_VoiceClass", propval.KindInt32, propval.Params{}},
		{"001011", "m_nPlayerClassId", propval.KindInt32, propval.Params{}},
		{"101011", "m_nCreditsEarned", propval.KindInt32, propval.Params{}},
		{"000111", "m_nPlayerIconIndex", propval.KindInt32, propval.Params{}},
		{"001111", "m_PendingBaseClass", propval.KindInt32, propval.Params{}},
		{"101111", "m_CurrentBaseClass", propval.KindInt32, propval.Params{}},
	})

	matineeActor := classTable("MatineeActor", []propSpec{
		{"00000", "netflags", propval.KindSizedBits, sized(6)},
		{"11101", "Position", propval.KindSizedBits, sized(32)},
		{"00011", "PlayRate", propval.KindInt32, propval.Params{}},
		{"11011", "bIsPlaying", propval.KindBool, propval.Params{}},
		{"00111", "InterpAction", propval.KindSizedBits, sized(32)},
	})

	utTeamInfo := classTable("UTTeamInfo", []propSpec{
		{"00000", "netflags", propval.KindSizedBits, sized(6)},
		{"10101", "TeamIndex", propval.KindInt32, propval.Params{}},
		{"00011", "TeamFlag", propval.KindSizedBits, sized(11)},
		{"10011", "HomeBase", propval.KindInt32, propval.Params{}},
	})

	worldInfo2 := classTable("WorldInfo2", []propSpec{
		{"00011", "TimeDilation", propval.KindInt32, propval.Params{}},
		{"01101", "WorldGravityZ", propval.KindInt32, propval.Params{}},
	})

	classes := map[uint32]*ClassDescriptor{
		BitsToKey("00001000100000000111111011011000"): firstClientObject,
		BitsToKey("10001000000000000000000000000000"): firstServerObject,
		BitsToKey("00101100100100010000000000000000"): matineeActor,
		BitsToKey("00011100001100100100000000000000"): classNamed("TrBaseTurret_BloodEagle", trBaseTurret),
		BitsToKey("00111100001100100100000000000000"): classNamed("TrBaseTurret_DiamondSword", trBaseTurret),
		BitsToKey("01010111000101011110000000000000"): emptyClass("TrCTFBase_BloodEagle"),
		BitsToKey("00110111000101011110000000000000"): emptyClass("TrCTFBase_DiamondSword"),
		BitsToKey("01111000100110010100000000000000"): classNamed("TrDevice_Blink", trDevice),
		BitsToKey("01000011100110010100000000000000"): classNamed("TrDevice_ConcussionGrenade", trDevice),
		BitsToKey("01100101110110010100000000000000"): classNamed("TrDevice_GrenadeLauncher_Light", trDevice),
		BitsToKey("00111001001110010100000000000000"): classNamed("TrDevice_Twinfusor", trDevice),
		BitsToKey("01001000101110010100000000000000"): classNamed("TrDevice_LaserTargeter", trDevice),
		BitsToKey("01101100101110010100000000000000"): classNamed("TrDevice_LightAssaultRifle", trDevice),
		BitsToKey("01111100101110010100000000000000"): classNamed("TrDevice_LightSpinfusor", trDevice),
		BitsToKey("00100111101110010100000000000000"): classNamed("TrDevice_Melee_DS", trDevice),
		BitsToKey("01011001000001010100000000000000"): classNamed("TrDevice_Spinfusor_100X", trDevice),
		BitsToKey("01011000100001010100000000000000"): classNamed("TrDevice_UtilityPack_Soldier", trDevice),
		BitsToKey("01110101110110010100000000000000"): classNamed("TrDevice_GrenadeXL", trDevice),
		BitsToKey("01001011001001010100000000000000"): trDroppedPickup,
		BitsToKey("00100100101111010100000000000000"): classNamed("TrFlagCTF_BloodEagle", trFlagCTF),
		BitsToKey("00110100101111010100000000000000"): classNamed("TrFlagCTF_DiamondSword", trFlagCTF),
		BitsToKey("01110001101110110100000000000000"): trGameReplicationInfo,
		BitsToKey("01101101010100001100000000000000"): trInventoryManager,
		BitsToKey("01010000100101011110000000000000"): classNamed("TrInventoryStation_BloodEagle0101", trInventoryStation),
		BitsToKey("01000000100101011110000000000000"): classNamed("TrInventoryStation_BloodEagle0100", trInventoryStation),
		BitsToKey("01100000100101011110000000000000"): classNamed("TrInventoryStation_BloodEagle0110", trInventoryStation),
		BitsToKey("00100000100101011110000000000000"): classNamed("TrInventoryStation_BloodEagle0010", trInventoryStation),
		BitsToKey("01001000100101011110000000000000"): classNamed("TrInventoryStation_DiamondSword", trInventoryStation),
		BitsToKey("01001011110100001100000000000000"): emptyClass("TrInventoryStationCollision"),
		BitsToKey("00110001010000010100000000000000"): trPlayerController,
		BitsToKey("00111010100001100100000000000000"): trPlayerPawn,
		BitsToKey("00000110101111001100000000000000"): trPlayerReplicationInfo,
		BitsToKey("00111100100101011110000000000000"): classNamed("TrPowerGenerator_BloodEagle", trPowerGenerator),
		BitsToKey("01111100100101011110000000000000"): classNamed("TrPowerGenerator_DiamondSword", trPowerGenerator),
		BitsToKey("01111010010000101100000000000000"): trProjBaseTurret,
		BitsToKey("00101010111000101100000000000000"): trProjSpinfusor,
		BitsToKey("01110010100010101100000000000000"): classNamed("TrRadarStation_BloodEagle", trRadarStation),
		BitsToKey("01001010100010101100000000000000"): classNamed("TrRadarStation_DiamondSword", trRadarStation),
		BitsToKey("00000000110010101100000000000000"): classNamed("TrRepairStationCollision", trRepairStation),
		BitsToKey("00010011100001101100000000000000"): emptyClass("TrServerSettingsInfo"),
		BitsToKey("00000011110100001100000000000000"): emptyClass("TrStationCollision"),
		BitsToKey("00100010100101011110000000000000"): classNamed("TrRepairStation_BloodEagle0010", trRepairStation),
		BitsToKey("01010010100101011110000000000000"): classNamed("TrRepairStation_BloodEagle0101", trRepairStation),
		BitsToKey("00110010100101011110000000000000"): classNamed("TrRepairStation_BloodEagle0011", trRepairStation),
		BitsToKey("01100010100101011110000000000000"): classNamed("TrRepairStation_BloodEagle0110", trRepairStation),
		BitsToKey("01011010100101011110000000000000"): classNamed("TrRepairStation_DiamondSword", trRepairStation),
		BitsToKey("00100110100101011110000000000000"): emptyClass("TrVehicleStation_BloodEagle"),
		BitsToKey("01100110100101011110000000000000"): emptyClass("TrVehicleStation_DiamondSword"),
		BitsToKey("00100111010010011000000000000000"): utTeamInfo,
		BitsToKey("00000101100101011110000000000000"): emptyClass("WorldInfo1"),
		BitsToKey("01010101111001011110000000000000"): worldInfo2,
	}

	return &Registry{classes: classes, root: firstServerObject}
}

// classNamed clones a shared property table under a different class name —
// several class keys in the table (device/device-station variants per team)
// share an identical property layout.
func classNamed(name string, base *ClassDescriptor) *ClassDescriptor {
	return &ClassDescriptor{Name: name, Properties: base.Properties, IDSize: base.IDSize}
}
