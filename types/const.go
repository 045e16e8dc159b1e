package types

// 分类阈值常量定义(MVA)
const (
	CategoryIIMinMVA  = 0.5 // II 类下限
	CategoryIIIMinMVA = 5   // III 类下限
	CategoryIVMinMVA  = 30  // IV 类下限
)

// 差动保护默认参数常量定义
const (
	CTErrorAllowance      = 0.10 // 电流互感器变比误差裕度
	DifferentialMargin    = 0.05 // 附加裕度
	DifferentialSafety    = 1.1  // 可靠系数
	DifferentialPickupCap = 0.40 // 启动值上限(pu)，安全边界
	Slope1WithLTC         = 30   // 有载调压时第一斜率(%)
	Slope1WithoutLTC      = 25   // 无载调压时第一斜率(%)
	Slope2                = 60   // 第二斜率(%)
	Harmonic2ndRestraint  = 15   // 二次谐波制动(%)
	Harmonic5thRestraint  = 35   // 五次谐波制动(%)
	HighSetThresholdPU    = 12   // 穿越故障倍数分界
	HighSetLow            = 10.0 // 差动速断低值(pu)
	HighSetHigh           = 12.0 // 差动速断高值(pu)
)

// 过流保护默认参数常量定义
const (
	OvercurrentPickupPU   = 1.25  // 启动电流(pu)
	HVTimeMultiplier      = 0.2   // 高压侧时间倍数
	LVTimeMultiplier      = 0.1   // 低压侧时间倍数
	CoordinationMinMargin = 0.3   // 最小级差(s)
	NonOperatingTripTime  = 999.0 // 不动作标记(s)
	IECNormalInverseK     = 0.14  // IEC 一般反时限常数 k
	IECNormalInverseAlpha = 0.02  // IEC 一般反时限指数 α
)

// 热稳定默认参数常量定义(A²s)
const (
	ThermalLimitA2s         = 1250 // 2 秒热稳定值
	FlatMechanicalLimitA2s  = 2000 // 小容量变压器机械强度
	MechanicalDurationScale = 2    // 机械强度系数
	AlarmFraction           = 0.80 // 告警比例
	TripFraction            = 0.95 // 跳闸比例
)

// 输出保留小数位
const (
	RatedCurrentPrecision   = 2
	ThroughFaultPUPrecision = 4
	DifferentialPrecision   = 2
	FaultCurrentPrecision   = 2
	PlugSettingPrecision    = 2
	TripTimePrecision       = 3
)

// 标准引用
const (
	RefIEEEC3791    = "IEEE C37.91"
	RefIEC602551871 = "IEC 60255-187-1"
	RefIEC60255151  = "IEC 60255-151"
	RefIEEEC57109   = "IEEE C57.109"
)
