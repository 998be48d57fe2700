package hud

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// 服务器统计消息的解析与校验
//
// 统计记录由游戏服务器以 JSON 下发。展示层不信任上游数据：
// 先用 JSON Schema 校验结构，再反序列化为强类型记录，
// 非法载荷整体拒绝，绝不部分应用。

// statsSchema 统计消息的 JSON Schema
const statsSchema = `{
  "type": "object",
  "required": ["efficiency", "pace"],
  "properties": {
    "efficiency": {
      "type": "object",
      "required": ["cardsGotten", "potentialCluesLost", "maxScore", "cluesStillUsable"],
      "properties": {
        "cardsGotten": {"type": "number", "minimum": 0},
        "potentialCluesLost": {"type": "number", "minimum": 0},
        "maxScore": {"type": "integer", "minimum": 0},
        "cluesStillUsable": {"type": "number", "minimum": 0}
      }
    },
    "pace": {
      "type": "object",
      "required": ["pace", "risk"],
      "properties": {
        "pace": {"type": "integer"},
        "risk": {
          "type": "string",
          "enum": ["Zero", "HighRisk", "MediumRisk", "LowRisk", "Null"]
        }
      }
    }
  }
}`

// compiledStatsSchema 编译后的统计消息 Schema（包级单例）
var compiledStatsSchema = mustCompileStatsSchema()

func mustCompileStatsSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	// 使用合成 URL 注册内嵌 Schema
	const url = "mem://schemas/stats.json"
	if err := compiler.AddResource(url, bytes.NewReader([]byte(statsSchema))); err != nil {
		panic(fmt.Sprintf("hud: failed to add stats schema resource: %v", err))
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("hud: failed to compile stats schema: %v", err))
	}
	return schema
}

// statsPayloadJSON 统计消息的 JSON 结构
type statsPayloadJSON struct {
	Efficiency struct {
		CardsGotten        float64 `json:"cardsGotten"`
		PotentialCluesLost float64 `json:"potentialCluesLost"`
		MaxScore           int     `json:"maxScore"`
		CluesStillUsable   float64 `json:"cluesStillUsable"`
	} `json:"efficiency"`
	Pace struct {
		Pace int    `json:"pace"`
		Risk string `json:"risk"`
	} `json:"pace"`
}

// ParseStatsPayload 解析并校验服务器下发的统计消息。
//
// 返回：
//   - EfficiencyStats, PaceStats: 校验通过的强类型统计记录
//   - error: JSON 非法或不符合 Schema 时返回错误
func ParseStatsPayload(data []byte) (EfficiencyStats, PaceStats, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return EfficiencyStats{}, PaceStats{}, fmt.Errorf("failed to parse stats payload: %w", err)
	}

	if err := compiledStatsSchema.Validate(doc); err != nil {
		return EfficiencyStats{}, PaceStats{}, fmt.Errorf("stats payload failed schema validation: %w", err)
	}

	var payload statsPayloadJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return EfficiencyStats{}, PaceStats{}, fmt.Errorf("failed to decode stats payload: %w", err)
	}

	eff := EfficiencyStats{
		CardsGotten:        payload.Efficiency.CardsGotten,
		PotentialCluesLost: payload.Efficiency.PotentialCluesLost,
		MaxScore:           payload.Efficiency.MaxScore,
		CluesStillUsable:   payload.Efficiency.CluesStillUsable,
	}
	pace := PaceStats{
		Pace: payload.Pace.Pace,
		Risk: ParsePaceRisk(payload.Pace.Risk),
	}
	return eff, pace, nil
}
